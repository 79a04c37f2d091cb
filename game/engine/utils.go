package engine

// clockwise lists headings in turn-right order; turning left walks it backwards
var clockwise = []Heading{North, East, South, West}

// ParseHeading converts a one-letter heading into a Heading
func ParseHeading(s string) (Heading, bool) {
	h := Heading(s)
	if !h.Valid() {
		return "", false
	}
	return h, true
}

// Valid reports whether h is one of N, E, S, W
func (h Heading) Valid() bool {
	return headingIndex(h) >= 0
}

// Left returns the heading after a counter-clockwise quarter turn
func (h Heading) Left() Heading {
	i := headingIndex(h)
	if i < 0 {
		return h
	}
	return clockwise[(i+len(clockwise)-1)%len(clockwise)]
}

// Right returns the heading after a clockwise quarter turn
func (h Heading) Right() Heading {
	i := headingIndex(h)
	if i < 0 {
		return h
	}
	return clockwise[(i+1)%len(clockwise)]
}

// Delta returns the unit step for h. North increases y.
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

func headingIndex(h Heading) int {
	for i, c := range clockwise {
		if c == h {
			return i
		}
	}
	return -1
}

// headingGlyph marks the rover on a rendered map
var headingGlyph = map[Heading]byte{
	North: '^',
	East:  '>',
	South: 'v',
	West:  '<',
}

// RenderGrid draws the grid one row per line with north at the top.
// '#' is an obstacle, '.' a free cell and the rover shows as ^ > v <.
func RenderGrid(g *Grid, rover State) []string {
	rows := make([]string, 0, g.Height())
	for y := g.Height() - 1; y >= 0; y-- {
		row := make([]byte, g.Width())
		for x := 0; x < g.Width(); x++ {
			switch {
			case x == rover.X && y == rover.Y:
				glyph, ok := headingGlyph[rover.Heading]
				if !ok {
					glyph = '?'
				}
				row[x] = glyph
			case g.HasObstacle(x, y):
				row[x] = '#'
			default:
				row[x] = '.'
			}
		}
		rows = append(rows, string(row))
	}
	return rows
}
