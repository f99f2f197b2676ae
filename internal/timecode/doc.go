// Package timecode parses wall-clock positions and ranges used in censor
// documents and resolves them to absolute sample offsets.
//
// Positions carry millisecond precision and convert to sample counts with
// checked 32-bit arithmetic; overflow is reported instead of wrapping.
// Ranges are half-open spans with optional endpoints: "^" stands for the
// start of the stream and "$" for its end.
package timecode
