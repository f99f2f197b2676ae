// Package pathtemplate expands the compact file entries of a censor
// document into the names that exist on disk.
//
// A directory declares optional name decorations (prefix, suffix,
// extension) and entries may embed an enumeration marker: a run of '$'
// characters for a zero-padded decimal counter or the token "$@" for an
// uppercase alphabetic counter. Strip applies the inverse so discovered
// files can be written back as compact entries.
package pathtemplate
