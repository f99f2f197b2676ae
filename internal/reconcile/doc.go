// Package reconcile matches the file entries of loaded censor documents
// against the files on disk and classifies every file into exactly one
// task.
//
// Classification is total: a WAV file under a configured directory is
// either copied verbatim (no replacements), processed (replacements
// resolved against its samples), or silenced (its transcript lacks usable
// timing, or no document accounts for it at all). Unknown audio is muted
// rather than passed through. Non-WAV files ride along as plain copies.
//
// Plans are built single threaded before any task runs; execution order
// never affects the outcome.
package reconcile
