package grid

import (
	"strings"

	"github.com/memmaker/targeter/engine/geom"
	"github.com/pkg/errors"
)

var featureGlyphs = map[rune]Feature{
	'.':  Floor,
	'#':  RockWall,
	'X':  PermaRock,
	'=':  StoneWall,
	'M':  MetalWall,
	'C':  CrystalWall,
	'o':  ClearRockWall,
	'O':  ClearStoneWall,
	'T':  Tree,
	'+':  ClosedDoor,
	'\'': OpenDoor,
	'%':  Grate,
	'8':  Statue,
}

const (
	cloudGlyph     = '~'
	sanctuaryGlyph = '!'
	unseenGlyph    = '?'
)

func glyphFor(f Feature) rune {
	for r, feature := range featureGlyphs {
		if feature == f {
			return r
		}
	}
	return unseenGlyph
}

// ParseASCII builds a map from rows of glyphs. Blank lines around the map are ignored,
// all rows must have the same length. '~' is floor with a cloud, '!' sanctuary floor
// and '?' rock that has never been seen.
func ParseASCII(text string) (*Map, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, errors.New("empty map")
	}
	width := len([]rune(rows[0]))
	m := NewMap(int32(width), int32(len(rows)))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, errors.Errorf("row %d has %d cells, expected %d", y, len(runes), width)
		}
		for x, r := range runes {
			p := geom.Int2{X: int32(x), Y: int32(y)}
			cell := m.GetCell(p)
			switch r {
			case cloudGlyph:
				cell.Cloud = true
			case sanctuaryGlyph:
				cell.Sanctuary = true
			case unseenGlyph:
				cell.Feature = RockWall
				cell.Known = false
			default:
				f, ok := featureGlyphs[r]
				if !ok {
					return nil, errors.Errorf("unknown glyph %q at %s", r, p.ToString())
				}
				cell.Feature = f
			}
		}
	}
	return m, nil
}

func MustParseASCII(text string) *Map {
	m, err := ParseASCII(text)
	if err != nil {
		panic(err)
	}
	return m
}

// ASCII renders the terrain in the glyphs ParseASCII reads.
func (m *Map) ASCII() string {
	return m.Render(nil)
}

// Render draws the map, letting overlay replace the glyph of any cell.
// Occupied cells show the first letter of the occupant's name.
func (m *Map) Render(overlay func(p geom.Int2) (rune, bool)) string {
	var sb strings.Builder
	for y := int32(0); y < m.height; y++ {
		for x := int32(0); x < m.width; x++ {
			p := geom.Int2{X: x, Y: y}
			sb.WriteRune(m.glyphAt(p, overlay))
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

func (m *Map) glyphAt(p geom.Int2, overlay func(p geom.Int2) (rune, bool)) rune {
	if overlay != nil {
		if r, ok := overlay(p); ok {
			return r
		}
	}
	cell := m.GetCell(p)
	if overlay != nil && cell.IsOccupied() {
		name := []rune(cell.GetOccupant().GetName())
		if len(name) > 0 {
			return name[0]
		}
	}
	switch {
	case !cell.Known:
		return unseenGlyph
	case cell.Cloud:
		return cloudGlyph
	case cell.Sanctuary:
		return sanctuaryGlyph
	}
	return glyphFor(cell.Feature)
}
