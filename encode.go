package tilegrid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	// Output formats
	FormatText = "text"
	FormatJS   = "js"
)

// Encode writes the grid to `w` in the given format.
func (g *Grid) Encode(w io.Writer, format string, trim bool) error {
	switch format {
	case FormatText, "":
		return g.EncodeText(w, trim)
	case FormatJS:
		return g.EncodeJS(w)
	}
	return fmt.Errorf("unknown format %q", format)
}

// EncodeText writes one line per row, each id followed by a space.
// With `trim` the space after the last id of a row is dropped.
func (g *Grid) EncodeText(w io.Writer, trim bool) error {
	bw := bufio.NewWriter(w)
	for _, row := range g.cells {
		line := strings.Join(row, " ")
		if !trim {
			line += " "
		}
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// EncodeJS writes the grid as a javascript array of arrays, ready to be
// pasted in as a tilemap's `map`.
func (g *Grid) EncodeJS(w io.Writer) error {
	values := make([]string, len(g.cells))
	for i, row := range g.cells {
		values[i] = "    [" + strings.Join(row, ",") + "]"
	}

	_, err := io.WriteString(w, "[\n"+strings.Join(values, ",\n")+"\n]\n")
	return err
}
