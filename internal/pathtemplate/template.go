package pathtemplate

import (
	"fmt"
	"path"
	"strings"
)

// Template carries the name decorations a directory applies to its file
// entries. Empty fields are inert. Paths handled here are slash separated
// and relative; decorations touch only the final component.
type Template struct {
	Prefix    string
	Suffix    string
	Extension string
}

// Expand turns a configured entry path into the on-disk relative path:
// enumeration markers are substituted first, then the prefix is prepended
// and the suffix appended to the file name, and finally the extension is
// set.
func Expand(p string, index int, tpl Template) string {
	p = Enumerate(p, index)
	dir, name := path.Split(p)
	if tpl.Prefix != "" {
		name = tpl.Prefix + name
	}
	if tpl.Suffix != "" {
		name += tpl.Suffix
	}
	if tpl.Extension != "" {
		name = setExtension(name, tpl.Extension)
	}
	return dir + name
}

// Strip removes the template decorations from a discovered relative path so
// it can be stored as a compact entry: the extension must match and is
// dropped, then the prefix and suffix must be present and are removed.
// Enumeration markers are not reconstructed.
func Strip(p string, tpl Template) (string, error) {
	dir, name := path.Split(p)
	if tpl.Extension != "" {
		ext := "." + tpl.Extension
		if path.Ext(name) != ext {
			return "", fmt.Errorf("file %q does not carry extension %q", p, tpl.Extension)
		}
		name = strings.TrimSuffix(name, ext)
	}
	if tpl.Prefix != "" {
		trimmed, found := strings.CutPrefix(name, tpl.Prefix)
		if !found {
			return "", fmt.Errorf("file %q does not carry prefix %q", p, tpl.Prefix)
		}
		name = trimmed
	}
	if tpl.Suffix != "" {
		trimmed, found := strings.CutSuffix(name, tpl.Suffix)
		if !found {
			return "", fmt.Errorf("file %q does not carry suffix %q", p, tpl.Suffix)
		}
		name = trimmed
	}
	return dir + name, nil
}

// Matches reports whether a file name satisfies the template: the stem
// carries the prefix and suffix and the extension matches when set.
func Matches(name string, tpl Template) bool {
	ext := path.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if tpl.Prefix != "" && !strings.HasPrefix(stem, tpl.Prefix) {
		return false
	}
	if tpl.Suffix != "" && !strings.HasSuffix(stem, tpl.Suffix) {
		return false
	}
	if tpl.Extension != "" && ext != "."+tpl.Extension {
		return false
	}
	return true
}

// Enumerate substitutes the first enumeration marker in p. The token "$@"
// becomes the uppercase alphabetic form of index; a run of '$' characters
// becomes index+1 in decimal, zero padded to the run's width. Paths without
// a marker pass through unchanged.
func Enumerate(p string, index int) string {
	i := strings.IndexByte(p, '$')
	if i < 0 {
		return p
	}
	if strings.HasPrefix(p[i:], "$@") {
		return p[:i] + UppercaseRadix(index) + p[i+2:]
	}
	j := i
	for j < len(p) && p[j] == '$' {
		j++
	}
	return fmt.Sprintf("%s%0*d%s", p[:i], j-i, index+1, p[j:])
}

// UppercaseRadix renders index as an uppercase base-26 counter padded to a
// minimum width of two: 0 is "AA", 25 is "AZ", 26 is "BA".
func UppercaseRadix(index int) string {
	const base = 26
	var digits []byte
	for index > 0 {
		digits = append(digits, byte('A'+index%base))
		index /= base
	}
	for len(digits) < 2 {
		digits = append(digits, 'A')
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

func setExtension(name, ext string) string {
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		name = name[:i]
	}
	return name + "." + ext
}
