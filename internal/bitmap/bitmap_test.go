package bitmap

import (
	"strings"
	"testing"
)

func checkerboard(cols, rows int) *Grid {
	g := NewGrid(cols, rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			g.Cells[y][x] = (x+y)%2 == 0
		}
	}
	return g
}

func TestEncodeFormat(t *testing.T) {
	g := checkerboard(4, 3)
	out := string(Encode(g, "pictures/flags.png"))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3+g.Rows {
		t.Fatalf("Expected %d lines, got %d:\n%s", 3+g.Rows, len(lines), out)
	}

	if lines[0] != "P1" {
		t.Errorf("Line 1 should be the P1 magic, got %q", lines[0])
	}
	if lines[1] != "# Reference from pictures/flags.png" {
		t.Errorf("Comment line wrong: %q", lines[1])
	}
	if lines[2] != "4 3" {
		t.Errorf("Dimension line should be \"4 3\", got %q", lines[2])
	}

	for i, row := range lines[3:] {
		tokens := strings.Fields(row)
		if len(tokens) != g.Cols {
			t.Errorf("Row %d: expected %d tokens, got %d", i, g.Cols, len(tokens))
		}
		for _, tok := range tokens {
			if tok != "0" && tok != "1" {
				t.Errorf("Row %d: bad token %q", i, tok)
			}
		}
	}

	if lines[3] != "1 0 1 0" {
		t.Errorf("Row 0 should be \"1 0 1 0\", got %q", lines[3])
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	grids := []*Grid{
		checkerboard(64, 32),
		checkerboard(63, 31),
		NewGrid(1, 1),
		NewGrid(8, 2),
	}

	for _, g := range grids {
		decoded, err := Decode(Encode(g, "test.png"))
		if err != nil {
			t.Fatalf("Decode failed for %dx%d grid: %v", g.Cols, g.Rows, err)
		}
		if !decoded.Equal(g) {
			t.Errorf("Round trip changed the %dx%d grid", g.Cols, g.Rows)
		}
	}
}

func TestDegenerateGridRoundTrip(t *testing.T) {
	// An input narrower than the scale yields a zero-column grid whose
	// rows serialize as blank lines; those still count as rows.
	tests := []struct {
		name       string
		cols, rows int
	}{
		{"zero columns", 0, 32},
		{"zero rows", 5, 0},
		{"empty", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(tt.cols, tt.rows)
			decoded, err := Decode(Encode(g, "narrow.png"))
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if decoded.Cols != tt.cols || decoded.Rows != tt.rows {
				t.Errorf("Expected %dx%d, got %dx%d", tt.cols, tt.rows, decoded.Cols, decoded.Rows)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"bad magic", "P4\n2 1\n1 0\n"},
		{"missing dimensions", "P1\n"},
		{"garbage dimensions", "P1\nhello world\n"},
		{"too few rows", "P1\n2 2\n1 0\n"},
		{"too many rows", "P1\n2 1\n1 0\n0 1\n"},
		{"short row", "P1\n3 1\n1 0\n"},
		{"bad token", "P1\n2 1\n1 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.input)); err == nil {
				t.Errorf("Expected error for %q, got nil", tt.input)
			}
		})
	}
}

func TestDecodeSkipsComments(t *testing.T) {
	input := "P1\n# Reference from a.png\n# extra note\n2 2\n1 0\n0 1\n"
	g, err := Decode([]byte(input))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if g.Cols != 2 || g.Rows != 2 {
		t.Fatalf("Expected 2x2, got %dx%d", g.Cols, g.Rows)
	}
	if !g.Cells[0][0] || g.Cells[0][1] || g.Cells[1][0] || !g.Cells[1][1] {
		t.Errorf("Cell states wrong: %v", g.Cells)
	}
}

func TestPreview(t *testing.T) {
	g := NewGrid(3, 2)
	g.Cells[0][0] = true
	g.Cells[1][2] = true

	want := "█..\n..█\n"
	if got := Preview(g); got != want {
		t.Errorf("Preview mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}
