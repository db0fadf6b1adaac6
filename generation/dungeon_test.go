package generation

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"rogue-dungeon/components"
)

func roomsConfig(seed int64) Config {
	cfg := DefaultConfig().WithSeed(seed)
	cfg.Strategy = DungeonTypeRandomRooms
	return cfg
}

func TestGenerateRandomRooms(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		g := newTestGenerator(t, 80, 29, roomsConfig(seed))
		grid, err := g.Generate()
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}
		assertBorderIsWall(t, grid)

		rooms := g.Rooms()
		if len(rooms) == 0 || len(rooms) > DefaultMaxRooms {
			t.Fatalf("seed %d: unexpected room count %d", seed, len(rooms))
		}
		if len(g.Sections()) != 0 {
			t.Fatalf("seed %d: random rooms should not report sections", seed)
		}

		area := 0
		for i, room := range rooms {
			if room.Height < DefaultMinRoomHeight || room.Height > DefaultMaxRoomHeight ||
				room.Width < DefaultMinRoomWidth || room.Width > DefaultMaxRoomWidth {
				t.Fatalf("seed %d: room %+v out of size bounds", seed, room)
			}
			for j := i + 1; j < len(rooms); j++ {
				if room.Touches(rooms[j]) {
					t.Fatalf("seed %d: rooms %+v and %+v touch", seed, room, rooms[j])
				}
			}
			area += room.Height * room.Width
		}
		if got := grid.Count(components.CellOpen); got != area {
			t.Fatalf("seed %d: expected %d open cells, got %d", seed, area, got)
		}
	}
}

func TestGenerateRandomRoomsDeterministic(t *testing.T) {
	first, err := Generate(80, 29, roomsConfig(99))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Generate(80, 29, roomsConfig(99))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.Equal(second) {
		t.Fatal("same seed produced different grids")
	}
}

func TestRoomTouches(t *testing.T) {
	base := Room{Row: 5, Col: 5, Height: 3, Width: 4}
	tests := []struct {
		name  string
		other Room
		want  bool
	}{
		{name: "overlapping", other: Room{Row: 6, Col: 6, Height: 3, Width: 3}, want: true},
		{name: "adjacent below", other: Room{Row: 8, Col: 5, Height: 2, Width: 2}, want: true},
		{name: "one row apart", other: Room{Row: 9, Col: 5, Height: 2, Width: 2}, want: false},
		{name: "one column apart", other: Room{Row: 5, Col: 10, Height: 2, Width: 2}, want: false},
		{name: "diagonal corner", other: Room{Row: 8, Col: 9, Height: 2, Width: 2}, want: true},
	}
	for _, tt := range tests {
		if got := base.Touches(tt.other); got != tt.want {
			t.Errorf("%s: Touches = %v, want %v", tt.name, got, tt.want)
		}
		if got := tt.other.Touches(base); got != tt.want {
			t.Errorf("%s: reverse Touches = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSetSeedReproduces(t *testing.T) {
	g := newTestGenerator(t, 80, 29, DefaultConfig())

	g.SetSeed(5)
	first, err := g.Generate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.SetSeed(5)
	second, err := g.Generate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.Equal(second) {
		t.Fatal("reseeding did not reproduce the grid")
	}
}

func TestSetRandomMatchesSeed(t *testing.T) {
	seeded, err := Generate(80, 29, DefaultConfig().WithSeed(17))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g := newTestGenerator(t, 80, 29, DefaultConfig())
	g.SetRandom(rand.New(rand.NewSource(17)))
	injected, err := g.Generate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !seeded.Equal(injected) {
		t.Fatal("injected source and seed disagree")
	}
}

func TestLogFunc(t *testing.T) {
	g := newTestGenerator(t, 80, 29, DefaultConfig().WithSeed(3))

	var lines []string
	g.SetLogFunc(func(msg string) { lines = append(lines, msg) })
	if _, err := g.Generate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "bsp dungeon 80x29") {
		t.Fatalf("unexpected log line %q", lines[0])
	}
}

func TestRandRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		v, err := randRange(rng, -2, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v < -2 || v > 2 {
			t.Fatalf("value %d outside [-2, 2]", v)
		}
	}

	if v, err := randRange(rng, 4, 4); err != nil || v != 4 {
		t.Fatalf("expected 4, got %d (%v)", v, err)
	}
	if _, err := randRange(rng, 5, 4); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}
