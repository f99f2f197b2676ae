package main

import (
	"fmt"
	"io"
	"os"

	"batchcensor/internal/fileutil"
	"batchcensor/internal/manifest"
	"batchcensor/internal/reconcile"
)

// reportFindings summarizes files that will be muted on stderr. With list
// set, every file is printed with the configuration that governs it.
func reportFindings(w io.Writer, plan *reconcile.Plan, list bool) {
	if len(plan.Unaccounted) == 0 && len(plan.Silenced) == 0 {
		return
	}

	if !list {
		if len(plan.Unaccounted) > 0 {
			fmt.Fprintf(w, "Missing censor configuration for %d file(s) (--list to see them)\n", len(plan.Unaccounted))
		}
		if len(plan.Silenced) > 0 {
			fmt.Fprintf(w, "Silenced censor configuration for %d file(s) (--list to see them)\n", len(plan.Silenced))
		}
		return
	}

	for _, f := range plan.Unaccounted {
		fmt.Fprintf(w, "%s: missing config for: %s\n", f.ConfigPath, f.Path)
	}
	for _, f := range plan.Silenced {
		fmt.Fprintf(w, "%s: silenced config for: %s\n", f.ConfigPath, f.Path)
	}
}

// writeManifest renders the .oiv manifest for the modified directories to
// the target path, or to stdout when the target is "-".
func writeManifest(stdout io.Writer, target string, modified []string) error {
	content, err := manifest.Build(modified)
	if err != nil {
		return err
	}
	if target == "-" {
		return manifest.Write(stdout, content)
	}
	return fileutil.WithAtomicFile(target, func(f *os.File) error {
		return manifest.Write(f, content)
	})
}
