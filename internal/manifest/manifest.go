// Package manifest renders the .oiv package manifest consumed by the
// game's archive installer. Each top-level component of a modified
// directory identifier names an RPF archive; every modified directory
// contributes one .awc replacement entry to its archive.
package manifest

import (
	"encoding/xml"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Add replaces a single audio container inside an archive.
type Add struct {
	Source string `xml:"source,attr"`
	Value  string `xml:",chardata"`
}

// Archive is one RPF package and its replacement entries.
type Archive struct {
	Path             string `xml:"path,attr"`
	CreateIfNotExist string `xml:"createIfNotExist,attr"`
	Type             string `xml:"type,attr"`
	Add              []Add  `xml:"add"`
}

// Content is the manifest document root.
type Content struct {
	XMLName  xml.Name  `xml:"content"`
	Archives []Archive `xml:"archive"`
}

// Build groups the modified directory identifiers into archives. Identifiers
// use forward slashes; the first component selects the archive and the
// second names the audio container. A lone component has no container to
// replace and is an error.
func Build(modified []string) (*Content, error) {
	dirs := slices.Clone(modified)
	slices.Sort(dirs)
	dirs = slices.Compact(dirs)

	var content Content
	index := make(map[string]int)

	for _, dir := range dirs {
		rpf, rest, ok := strings.Cut(dir, "/")
		if !ok || rpf == "" || rest == "" {
			return nil, fmt.Errorf("modified directory %q has no audio container component", dir)
		}
		audio, _, _ := strings.Cut(rest, "/")

		i, ok := index[rpf]
		if !ok {
			i = len(content.Archives)
			index[rpf] = i
			content.Archives = append(content.Archives, Archive{
				Path:             fmt.Sprintf("x64/audio/sfx/%s.rpf", rpf),
				CreateIfNotExist: "True",
				Type:             "RPF7",
			})
		}
		content.Archives[i].Add = append(content.Archives[i].Add, Add{
			Source: dir + ".awc",
			Value:  audio + ".awc",
		})
	}
	return &content, nil
}

// Write renders the manifest as indented XML with a trailing newline.
func Write(w io.Writer, content *Content) error {
	out, err := xml.MarshalIndent(content, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}
