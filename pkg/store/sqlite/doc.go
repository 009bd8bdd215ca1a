// Package sqlite is a UserStore backed by an embedded SQLite database through
// gorm and the pure-Go glebarez driver.
package sqlite
