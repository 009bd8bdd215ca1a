// Package filestore keeps users in a single JSON or YAML document:
//
//	users:
//	  - id: 01J...
//	    firstName: Ada
//	    ...
//
// Files ending in .yaml or .yml are written as YAML, anything else as JSON.
// Reads accept either encoding. Every insert rewrites the file through a
// temporary sibling and a rename.
package filestore
