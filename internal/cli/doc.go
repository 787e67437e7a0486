// Package cli implements the solve24 command tree:
//
//	solve24 A B C D            same as "solve"
//	solve24 solve A B C D      one hand
//	solve24 batch FILE         every hand in a YAML/JSON puzzle file
//	solve24 history --db PATH  logged outcomes, newest first
//
// Output is text by default or a {status, data, error} envelope with
// --format json|yaml. Exit codes: 0 solved, 1 no solution, 2 usage or
// I/O error.
package cli
