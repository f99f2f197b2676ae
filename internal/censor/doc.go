// Package censor models the YAML documents that drive a censoring run.
//
// A document binds relative directories to the files censored beneath them.
// Directory entries may be written in three interchangeable forms: a list
// of explicit entries with replacement lists, a mapping of path to
// transcript text, or a list of such mappings. Parsed documents remember
// their form so synthesized entries round-trip in the style the document
// already uses.
//
// Transcripts are a compact mini-language: "[word]{range}" orders a
// replacement and a bare "[word]" marks a line whose timing is unknown,
// which silences the whole file.
package censor
