package components

import (
	"strings"
	"testing"
)

func TestNewGridStartsAsWall(t *testing.T) {
	g := NewGrid(5, 3)
	if g.Count(CellWall) != 15 {
		t.Fatalf("expected 15 walls, got %d", g.Count(CellWall))
	}
	if g.Count(CellOpen) != 0 {
		t.Fatalf("expected no open cells, got %d", g.Count(CellOpen))
	}
}

func TestGridSetAndAt(t *testing.T) {
	g := NewGrid(4, 3)
	g.SetCell(1, 2, CellOpen)

	if g.At(1, 2) != CellOpen {
		t.Fatal("expected (1,2) to be open")
	}
	if !g.IsWall(2, 1) {
		t.Fatal("expected (2,1) to be a wall")
	}

	// Off-grid writes are ignored and reads are walls
	g.SetCell(-1, 0, CellOpen)
	g.SetCell(0, 4, CellOpen)
	if g.Count(CellOpen) != 1 {
		t.Fatalf("expected 1 open cell, got %d", g.Count(CellOpen))
	}
	if g.At(3, 0) != CellWall || g.At(0, -1) != CellWall {
		t.Fatal("expected out of bounds reads to be walls")
	}
}

func TestGridEachRowMajor(t *testing.T) {
	g := NewGrid(3, 2)
	g.SetCell(1, 0, CellOpen)

	var visited [][2]int
	g.Each(func(row, col int, c Cell) {
		visited = append(visited, [2]int{row, col})
		if (row == 1 && col == 0) != (c == CellOpen) {
			t.Fatalf("unexpected cell %s at (%d,%d)", c, row, col)
		}
	})

	want := [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	if len(visited) != len(want) {
		t.Fatalf("expected %d cells, got %d", len(want), len(visited))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("step %d visited %v, want %v", i, visited[i], want[i])
		}
	}
}

func TestGridRowIsACopy(t *testing.T) {
	g := NewGrid(3, 2)
	row := g.Row(0)
	row[0] = CellOpen
	if g.At(0, 0) != CellWall {
		t.Fatal("mutating a row copy changed the grid")
	}
	if g.Row(5) != nil {
		t.Fatal("expected nil for a missing row")
	}
}

func TestGridCloneAndEqual(t *testing.T) {
	g := NewGrid(4, 4)
	g.SetCell(2, 2, CellOpen)

	clone := g.Clone()
	if !g.Equal(clone) {
		t.Fatal("expected clone to equal original")
	}
	clone.SetCell(1, 1, CellOpen)
	if g.Equal(clone) {
		t.Fatal("expected modified clone to differ")
	}
	if g.Equal(NewGrid(4, 3)) || g.Equal(nil) {
		t.Fatal("expected grids of different sizes to differ")
	}
}

func TestGridFillBorder(t *testing.T) {
	g := NewGrid(4, 3)
	g.Each(func(row, col int, _ Cell) { g.SetCell(row, col, CellOpen) })

	g.FillBorder()
	// Only the centre two cells stay open
	if g.Count(CellOpen) != 2 || g.At(1, 1) != CellOpen || g.At(1, 2) != CellOpen {
		t.Fatalf("unexpected grid after FillBorder:\n%s", g)
	}
}

func TestGridString(t *testing.T) {
	g := NewGrid(4, 3)
	g.SetCell(1, 1, CellOpen)
	g.SetCell(1, 2, CellOpen)

	want := strings.Join([]string{"####", "#..#", "####"}, "\n")
	if got := g.String(); got != want {
		t.Fatalf("unexpected rendering:\n%s\nwant:\n%s", got, want)
	}
}

func TestTileMapping(t *testing.T) {
	mapping := NewTileMapping()
	for _, c := range Cells {
		if def := mapping.Get(c); def.Glyph == '?' {
			t.Fatalf("cell %s has no definition", c)
		}
	}
	if mapping.Get(Cell(42)).Glyph != '?' {
		t.Fatal("expected a placeholder for unknown cells")
	}
	if Cell(42).String() != "unknown" {
		t.Fatalf("unexpected name %q", Cell(42).String())
	}
}
