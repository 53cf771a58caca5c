// Package export writes and reads accumulated word statistics.
//
// Formats:
//   - positions: "<word> <count> <pos1> ... <posN>" per word, first-seen order;
//   - counts:    "<word> <count>" per entry, in the order given;
//   - lengths:   "<length> <count>" ascending by length;
//   - CSV:       header "word,frequency,positions", frequency-sorted rows,
//                quoted space-joined positions;
//   - snapshot:  msgpack, schema-versioned, lossless.
package export
