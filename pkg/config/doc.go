// Package config loads the authform configuration file.
//
//	rules:
//	  preset: standard        # standard | extended
//	  special_characters: ""  # overrides the preset set when non-empty
//	store:
//	  driver: memory          # memory | sqlite | file
//	  path: ""                # required for sqlite and file
//	log:
//	  level: info             # debug | info | warn | error
//	  format: text            # text | json
//
// YAML is the primary format; JSON documents parse as well.
package config
