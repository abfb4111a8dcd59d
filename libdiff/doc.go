// Package libdiff compares two renderings line by line.
package libdiff
