package censor

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type filesShape int

const (
	shapeList filesShape = iota
	shapeMap
	shapeMapList
)

// ReplaceFile is an explicit file entry in the list form of a directory's
// files.
type ReplaceFile struct {
	Path       string      `yaml:"path"`
	Transcript *Transcript `yaml:"transcript,omitempty"`
	Replace    []Replace   `yaml:"replace,omitempty"`
}

// FileEntry is one (path, replacements, transcript) row regardless of the
// document form it came from.
type FileEntry struct {
	Path       string
	Replace    []Replace
	Transcript *Transcript
}

type mapEntry struct {
	Path       string
	Transcript *Transcript
}

// Files holds a directory's file entries in one of three interchangeable
// document forms: a list of explicit entries, a mapping of path to
// transcript, or a list of such mappings. The zero value is an empty list
// form.
type Files struct {
	shape filesShape
	list  []ReplaceFile
	maps  [][]mapEntry
}

// NewMapListFiles returns an empty Files in list-of-mappings form, the form
// used for synthesized directory entries.
func NewMapListFiles() Files {
	return Files{shape: shapeMapList}
}

// Entries flattens the document form into ordered rows. Entry order is the
// document order; the enumeration index of an entry is its position here.
func (f *Files) Entries() []FileEntry {
	if f.shape == shapeList {
		entries := make([]FileEntry, 0, len(f.list))
		for _, rf := range f.list {
			entries = append(entries, FileEntry{Path: rf.Path, Replace: rf.Replace, Transcript: rf.Transcript})
		}
		return entries
	}
	var entries []FileEntry
	for _, m := range f.maps {
		for _, e := range m {
			entries = append(entries, FileEntry{Path: e.Path, Transcript: e.Transcript})
		}
	}
	return entries
}

// Len reports the number of entries across all forms.
func (f *Files) Len() int {
	if f.shape == shapeList {
		return len(f.list)
	}
	n := 0
	for _, m := range f.maps {
		n += len(m)
	}
	return n
}

// Insert appends an entry in the receiver's document form. List-of-mappings
// form pushes a new singleton mapping.
func (f *Files) Insert(path string, t *Transcript) {
	switch f.shape {
	case shapeList:
		f.list = append(f.list, ReplaceFile{Path: path, Transcript: t})
	case shapeMap:
		if len(f.maps) == 0 {
			f.maps = [][]mapEntry{nil}
		}
		f.maps[0] = append(f.maps[0], mapEntry{Path: path, Transcript: t})
	case shapeMapList:
		f.maps = append(f.maps, []mapEntry{{Path: path, Transcript: t}})
	}
}

// UnmarshalYAML accepts the three document forms. A sequence whose every
// element carries a "path" key reads as the list form; any other sequence
// reads as a list of path-to-transcript mappings.
func (f *Files) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.MappingNode:
		entries, err := decodeTranscriptMap(value)
		if err != nil {
			return err
		}
		*f = Files{shape: shapeMap, maps: [][]mapEntry{entries}}
		return nil
	case yaml.SequenceNode:
		if isFileEntrySequence(value) {
			var list []ReplaceFile
			if err := value.Decode(&list); err != nil {
				return err
			}
			*f = Files{shape: shapeList, list: list}
			return nil
		}
		maps := make([][]mapEntry, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.MappingNode {
				return fmt.Errorf("line %d: files entry must be a mapping", item.Line)
			}
			entries, err := decodeTranscriptMap(item)
			if err != nil {
				return err
			}
			maps = append(maps, entries)
		}
		*f = Files{shape: shapeMapList, maps: maps}
		return nil
	default:
		return fmt.Errorf("line %d: files must be a sequence or a mapping", value.Line)
	}
}

// MarshalYAML writes the entries back in the form they were read in,
// preserving mapping order.
func (f Files) MarshalYAML() (any, error) {
	switch f.shape {
	case shapeMap:
		return transcriptMapNode(f.maps[0]), nil
	case shapeMapList:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, m := range f.maps {
			node.Content = append(node.Content, transcriptMapNode(m))
		}
		return node, nil
	default:
		if f.list == nil {
			return []ReplaceFile{}, nil
		}
		return f.list, nil
	}
}

func isFileEntrySequence(node *yaml.Node) bool {
	if len(node.Content) == 0 {
		return true
	}
	for _, item := range node.Content {
		if item.Kind != yaml.MappingNode || !hasMappingKey(item, "path") {
			return false
		}
	}
	return true
}

func hasMappingKey(node *yaml.Node, key string) bool {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}

func decodeTranscriptMap(node *yaml.Node) ([]mapEntry, error) {
	entries := make([]mapEntry, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var t Transcript
		if err := node.Content[i+1].Decode(&t); err != nil {
			return nil, err
		}
		entries = append(entries, mapEntry{Path: node.Content[i].Value, Transcript: &t})
	}
	return entries, nil
}

func transcriptMapNode(entries []mapEntry) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range entries {
		text := ""
		if e.Transcript != nil {
			text = e.Transcript.Text
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Path},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: text},
		)
	}
	return node
}
