// Package tablestyle converts Markdown tables into the wiki table dialect.
//
// The conversion is line oriented:
//
//	| a | b |          ->  | a | b |h
//	| --- | --- |      ->  (dropped)
//	| 1 | multi        ->  | 1 | multi&br;line |
//	line |
//
// The first complete row of the input is the header row and gets an h
// before its newline. A line that does not end with the closing | is a soft
// line break inside a cell and is joined to the next line with &br;.
// Multiple tables in one input are not distinguished: only the very first
// row is treated as a header.
package tablestyle
