package header

import (
	"errors"
	"strconv"
	"strings"
)

// Meta is the metadata recoverable from a generated artifact.
type Meta struct {
	Ident  string
	Width  int
	Height int
}

// Pixels returns the declared array length.
func (m Meta) Pixels() int { return m.Width * m.Height }

// ParseMeta reads the identifier and dimensions back out of a
// generated artifact. It understands only the format Generate emits;
// anything else is rejected. The identifier comes from the data array
// declaration rather than the #define names because upper-casing is
// not reversible.
func ParseMeta(artifact []byte) (Meta, error) {
	var m Meta
	for _, line := range strings.Split(string(artifact), "\n") {
		switch {
		case strings.HasPrefix(line, "#define "):
			f := strings.Fields(line)
			if len(f) != 3 {
				continue
			}
			v, err := strconv.Atoi(f[2])
			if err != nil {
				continue
			}
			if strings.HasSuffix(f[1], "_WIDTH") {
				m.Width = v
			} else if strings.HasSuffix(f[1], "_HEIGHT") {
				m.Height = v
			}
		case strings.HasPrefix(line, "const uint16_t "):
			rest := strings.TrimPrefix(line, "const uint16_t ")
			if i := strings.Index(rest, "_data["); i > 0 {
				m.Ident = rest[:i]
			}
		}
	}
	if m.Ident == "" || m.Width <= 0 || m.Height <= 0 {
		return Meta{}, errors.New("not a generated image header")
	}
	return m, nil
}
