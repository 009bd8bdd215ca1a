// Package strength scores passwords for live feedback. The level depends only
// on how many of the five password criteria a value meets:
//
//	empty       -> none
//	0-2 met     -> weak
//	3-4 met     -> medium
//	all 5 met   -> strong
//
// The level is informational. Submission is gated by the password validator
// message that Score returns alongside it, never by the level.
package strength
