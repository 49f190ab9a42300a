// Package listing renders raw binary blobs as decimal byte listings for
// inclusion in 8-bit assembler source.
//
// Every byte becomes its decimal value followed by ", ". A line break is
// written before each RecordSize-byte group after the first, so one line of
// output holds one sprite record. The final token keeps its trailing ", "
// and no newline terminates the listing; downstream assemblers depend on
// that exact shape.
package listing
