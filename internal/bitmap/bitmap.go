package bitmap

import (
	"fmt"
	"os"
	"strings"
)

// Grid is a low-resolution boolean display state recovered from a
// scaled-up screenshot. It is a pure snapshot: once built it keeps no
// reference to the raster it was sampled from.
type Grid struct {
	Cols  int
	Rows  int
	Cells [][]bool // Cells[y][x], row-major
}

// NewGrid allocates an all-off grid of the given dimensions.
func NewGrid(cols, rows int) *Grid {
	cells := make([][]bool, rows)
	for y := range cells {
		cells[y] = make([]bool, cols)
	}
	return &Grid{Cols: cols, Rows: rows, Cells: cells}
}

// Equal reports whether two grids have the same shape and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if g.Cols != other.Cols || g.Rows != other.Rows {
		return false
	}
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			if g.Cells[y][x] != other.Cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Encode serializes the grid as a plain-text PBM (P1) bitmap. The
// comment line records which image the reference was extracted from.
// Layout is fixed: magic, comment, "<cols> <rows>", then one line per
// row of space-separated 1/0 tokens.
func Encode(g *Grid, source string) []byte {
	var b strings.Builder
	b.WriteString("P1\n")
	fmt.Fprintf(&b, "# Reference from %s\n", source)
	fmt.Fprintf(&b, "%d %d\n", g.Cols, g.Rows)
	for y := 0; y < g.Rows; y++ {
		tokens := make([]string, g.Cols)
		for x := 0; x < g.Cols; x++ {
			if g.Cells[y][x] {
				tokens[x] = "1"
			} else {
				tokens[x] = "0"
			}
		}
		b.WriteString(strings.Join(tokens, " "))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// Write encodes the grid and writes it to path.
func Write(g *Grid, source, path string) error {
	return os.WriteFile(path, Encode(g, source), 0644)
}

// Decode parses a P1 text bitmap produced by Encode. It is strict:
// the magic must be P1, the header dimensions must match the number of
// rows and per-row tokens exactly, and every token must be 1 or 0.
// Comment lines (leading '#') are skipped wherever they appear.
func Decode(data []byte) (*Grid, error) {
	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}

	// Header lines: blanks and comments are skipped.
	i := 0
	nextHeader := func() (string, bool) {
		for i < len(lines) {
			line := strings.TrimSpace(lines[i])
			i++
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			return line, true
		}
		return "", false
	}

	magic, ok := nextHeader()
	if !ok {
		return nil, fmt.Errorf("empty bitmap")
	}
	if magic != "P1" {
		return nil, fmt.Errorf("bad magic %q, want P1", magic)
	}

	dims, ok := nextHeader()
	if !ok {
		return nil, fmt.Errorf("missing dimension line")
	}

	var cols, rows int
	if _, err := fmt.Sscanf(dims, "%d %d", &cols, &rows); err != nil {
		return nil, fmt.Errorf("bad dimension line %q: %v", dims, err)
	}
	if cols < 0 || rows < 0 {
		return nil, fmt.Errorf("negative dimensions %dx%d", cols, rows)
	}

	// Row lines are taken verbatim: a zero-column grid serializes each
	// row as a blank line, so blanks count as rows here. Comments are
	// still skipped, and trailing blank lines (the final newline) are
	// tolerated.
	var rowLines []string
	for ; i < len(lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "#") {
			continue
		}
		rowLines = append(rowLines, lines[i])
	}
	for len(rowLines) > rows && strings.TrimSpace(rowLines[len(rowLines)-1]) == "" {
		rowLines = rowLines[:len(rowLines)-1]
	}
	if len(rowLines) != rows {
		return nil, fmt.Errorf("header declares %d rows, found %d", rows, len(rowLines))
	}

	g := NewGrid(cols, rows)
	for y, line := range rowLines {
		tokens := strings.Fields(line)
		if len(tokens) != cols {
			return nil, fmt.Errorf("row %d: header declares %d columns, found %d tokens", y, cols, len(tokens))
		}
		for x, tok := range tokens {
			switch tok {
			case "1":
				g.Cells[y][x] = true
			case "0":
				g.Cells[y][x] = false
			default:
				return nil, fmt.Errorf("row %d: bad token %q", y, tok)
			}
		}
	}

	return g, nil
}

// Preview renders the grid as console glyphs, one line per row:
// a filled block for on cells, a period for off cells. Informational
// output only; the persisted artifact is the PBM text.
func Preview(g *Grid) string {
	var b strings.Builder
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			if g.Cells[y][x] {
				b.WriteRune('█')
			} else {
				b.WriteRune('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
