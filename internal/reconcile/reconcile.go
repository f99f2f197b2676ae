package reconcile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"batchcensor/internal/censor"
	"batchcensor/internal/fileutil"
	"batchcensor/internal/pathtemplate"
)

// ErrUnexpectedFile reports a document entry whose templated path has no
// file on disk.
var ErrUnexpectedFile = errors.New("did not expect to censor file")

// Source is one loaded censor document bound to the directories it governs.
type Source struct {
	// ConfigPath is where the document was loaded from, kept for
	// diagnostics and for writing synthesized entries back.
	ConfigPath string
	// Root anchors the document's relative directory paths.
	Root string
	// Output is the destination root mirrored beneath Root's directories.
	Output string
	Config *censor.Config
}

// Finding ties a discovered file to the document that silenced it or failed
// to account for it.
type Finding struct {
	Path       string // absolute source path
	RelToDir   string // slash path relative to the configured directory
	Dir        string // configured directory identifier
	ConfigPath string
}

// Plan is the complete reconciliation of configured entries against the
// files on disk.
type Plan struct {
	Tasks []Task
	// Silenced lists entries whose transcript has markers without timing.
	Silenced []Finding
	// Unaccounted lists files no document entry matched.
	Unaccounted []Finding
	// Modified holds the sorted directory identifiers that received at
	// least one Process or Silence task.
	Modified []string
}

type pendingFile struct {
	dest       string
	relToDir   string
	dir        string
	configPath string
}

// Build reconciles every source against the files on disk. Each WAV file
// beneath a configured directory lands in exactly one task; a document
// entry whose templated path has no file on disk is a hard error.
func Build(sources []Source) (*Plan, error) {
	plan := &Plan{}
	modified := make(map[string]struct{})
	pending := make(map[string]pendingFile)
	consumed := make(map[string]struct{})
	walked := make(map[string]struct{})
	copied := make(map[string]struct{})

	for _, src := range sources {
		for di := range src.Config.Dirs {
			dir := &src.Config.Dirs[di]
			physRoot := filepath.Join(src.Root, filepath.FromSlash(dir.Path))
			destRoot := filepath.Join(src.Output, filepath.FromSlash(dir.Path))

			info, err := os.Stat(physRoot)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", src.ConfigPath, err)
			}
			if !info.IsDir() {
				return nil, fmt.Errorf("%s: not a directory: %s", src.ConfigPath, physRoot)
			}

			if _, done := walked[physRoot]; !done {
				walked[physRoot] = struct{}{}
				if err := indexRoot(src, dir.Path, physRoot, destRoot, plan, pending, consumed, copied); err != nil {
					return nil, err
				}
			}

			tpl := dir.Template(src.Config.FileExtension)
			for i, entry := range dir.Files.Entries() {
				expanded := pathtemplate.Expand(entry.Path, i, tpl)
				phys := filepath.Join(physRoot, filepath.FromSlash(expanded))

				p, ok := pending[phys]
				if !ok {
					return nil, fmt.Errorf("%s: %w: %s", src.ConfigPath, ErrUnexpectedFile, phys)
				}
				delete(pending, phys)
				consumed[phys] = struct{}{}
				dest := filepath.Join(destRoot, filepath.Base(phys))

				if entry.Transcript.Silences() {
					plan.Silenced = append(plan.Silenced, Finding{
						Path:       phys,
						RelToDir:   p.relToDir,
						Dir:        dir.Path,
						ConfigPath: src.ConfigPath,
					})
					plan.Tasks = append(plan.Tasks, Task{Kind: Silence, Source: phys, Dest: dest})
					modified[dir.Path] = struct{}{}
					continue
				}

				replaces := slices.Clone(entry.Replace)
				if entry.Transcript != nil {
					replaces = append(replaces, entry.Transcript.Replace...)
				}
				if len(replaces) == 0 {
					plan.Tasks = append(plan.Tasks, Task{Kind: Copy, Source: phys, Dest: dest})
					continue
				}
				plan.Tasks = append(plan.Tasks, Task{Kind: Process, Source: phys, Dest: dest, Replace: replaces})
				modified[dir.Path] = struct{}{}
			}
		}
	}

	var pendingPaths []string
	for source := range pending {
		pendingPaths = append(pendingPaths, source)
	}
	slices.Sort(pendingPaths)
	for _, source := range pendingPaths {
		p := pending[source]
		plan.Unaccounted = append(plan.Unaccounted, Finding{
			Path:       source,
			RelToDir:   p.relToDir,
			Dir:        p.dir,
			ConfigPath: p.configPath,
		})
		plan.Tasks = append(plan.Tasks, Task{Kind: Silence, Source: source, Dest: p.dest})
		modified[p.dir] = struct{}{}
	}

	var modifiedDirs []string
	for dir := range modified {
		modifiedDirs = append(modifiedDirs, dir)
	}
	slices.Sort(modifiedDirs)
	plan.Modified = modifiedDirs
	return plan, nil
}

// indexRoot walks one physical directory: WAV files become pending entries
// waiting to be claimed, everything else is copied through. A sidecar asset
// sitting next to the directory rides along too.
func indexRoot(src Source, dirRel, physRoot, destRoot string, plan *Plan, pending map[string]pendingFile, consumed, copied map[string]struct{}) error {
	if sidecar := replaceExt(physRoot, ".oac"); fileExists(sidecar) {
		addCopy(plan, copied, sidecar, replaceExt(destRoot, ".oac"))
	}

	files, err := fileutil.ListFiles(physRoot)
	if err != nil {
		return fmt.Errorf("%s: list %s: %w", src.ConfigPath, physRoot, err)
	}
	for _, f := range files {
		rel, err := filepath.Rel(physRoot, f)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if filepath.Ext(f) != ".wav" {
			addCopy(plan, copied, f, filepath.Join(destRoot, filepath.FromSlash(rel)))
			continue
		}
		if _, done := consumed[f]; done {
			continue
		}
		if _, queued := pending[f]; queued {
			continue
		}
		pending[f] = pendingFile{
			dest:       filepath.Join(destRoot, filepath.Base(f)),
			relToDir:   rel,
			dir:        dirRel,
			configPath: src.ConfigPath,
		}
	}
	return nil
}

func addCopy(plan *Plan, copied map[string]struct{}, source, dest string) {
	key := source + "\x00" + dest
	if _, dup := copied[key]; dup {
		return
	}
	copied[key] = struct{}{}
	plan.Tasks = append(plan.Tasks, Task{Kind: Copy, Source: source, Dest: dest})
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func replaceExt(p, ext string) string {
	if e := filepath.Ext(p); e != "" {
		p = strings.TrimSuffix(p, e)
	}
	return p + ext
}
