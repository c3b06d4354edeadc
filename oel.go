/* this file holds the structs for reading Ogmo level (.oel) files.

An .oel level is an XML document whose root element holds one child element
per layer (in editor order). A tile layer holds one element per placed tile,
each carrying the pixel position (x, y) of the tile & its id:

	<level width="256" height="240">
	  <Solids />
	  <Objects />
	  <Tiles tileset="bg">
	    <tile x="32" y="48" id="7" />
	  </Tiles>
	</level>

We don't care what the layers or tiles are called, only where they are.
*/
package tilegrid

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// Level is the root of an .oel file.
type Level struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []*Layer   `xml:",any"` // every child element, in document order
}

// Layer is a single child of the level root.
type Layer struct {
	XMLName    xml.Name
	Attrs      []xml.Attr   `xml:",any,attr"`
	Placements []*Placement `xml:",any"`
}

// Placement is one tile placed somewhere on a layer. All values are kept
// exactly as written in the file, see Coords & TileID for the typed view.
type Placement struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
}

// Attr returns the value of the named attribute, if set.
func (p *Placement) Attr(name string) (string, bool) {
	for _, a := range p.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Coords returns the pixel position (x, y) of the placement.
func (p *Placement) Coords() (int, int, error) {
	x, err := p.intAttr("x")
	if err != nil {
		return 0, 0, err
	}
	y, err := p.intAttr("y")
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// TileID returns the tile id as written. We never coerce it to a number.
func (p *Placement) TileID() (string, error) {
	id, ok := p.Attr("id")
	if !ok {
		return "", fmt.Errorf("%w: <%s> has no id", ErrMissingAttr, p.XMLName.Local)
	}
	return id, nil
}

func (p *Placement) intAttr(name string) (int, error) {
	raw, ok := p.Attr(name)
	if !ok {
		return 0, fmt.Errorf("%w: <%s> has no %s", ErrMissingAttr, p.XMLName.Local, name)
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %v", ErrBadCoordinate, name, raw, err)
	}
	return v, nil
}

// Layer returns the child of the root at `index` (0 based, elements only).
func (l *Level) Layer(index int) (*Layer, error) {
	if index < 0 || index >= len(l.Children) {
		return nil, fmt.Errorf("%w: want child %d, level <%s> has %d", ErrNoLayer, index, l.XMLName.Local, len(l.Children))
	}
	return l.Children[index], nil
}

// LayerByName returns the first child of the root with the given tag.
func (l *Level) LayerByName(name string) (*Layer, error) {
	for _, c := range l.Children {
		if c.XMLName.Local == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: level <%s> has no <%s>", ErrNoLayer, l.XMLName.Local, name)
}

// Decode an input .oel level. The whole document is read: anything but
// whitespace, comments or processing instructions after the root element
// is an error.
func Decode(r io.Reader) (*Level, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel

	l := &Level{}
	if err := d.Decode(l); err != nil {
		return nil, err
	}

	for {
		tok, err := d.Token()
		if err == io.EOF {
			return l, nil
		} else if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst:
			continue
		case xml.CharData:
			if len(bytes.TrimSpace(t)) == 0 {
				continue
			}
		}
		line, _ := d.InputPos()
		return nil, fmt.Errorf("%w: line %d", ErrTrailingData, line)
	}
}

// Open reads & decodes the level at `fname`. The file is closed before
// we return.
func Open(fname string) (*Level, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	l, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", fname, err)
	}
	return l, nil
}
