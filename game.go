package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"rogue-dungeon/components"
	"rogue-dungeon/config"
	"rogue-dungeon/generation"
)

// Game implements ebiten.Game interface and displays one dungeon at a time.
type Game struct {
	generator generation.MapGenerator
	tiles     *components.TileMapping
	grid      *components.Grid
	seed      int64
	showHelp  bool
}

// NewGame creates a viewer and generates the first dungeon from seed
func NewGame(generator generation.MapGenerator, seed int64) (*Game, error) {
	game := &Game{
		generator: generator,
		tiles:     components.NewTileMapping(),
	}
	if err := game.regenerate(seed); err != nil {
		return nil, err
	}
	return game, nil
}

// regenerate replaces the current dungeon with a fresh one
func (g *Game) regenerate(seed int64) error {
	g.generator.SetSeed(seed)
	grid, err := g.generator.Generate()
	if err != nil {
		return fmt.Errorf("generate dungeon with seed %d: %w", seed, err)
	}
	g.grid = grid
	g.seed = seed
	log.Printf("Showing dungeon with seed %d", seed)
	return nil
}

// Update handles key presses.
func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(KeymapQuit.Key):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(KeymapHelp.Key):
		g.showHelp = !g.showHelp
	case inpututil.IsKeyJustPressed(KeymapStart.Key):
		if err := g.regenerate(time.Now().UnixNano()); err != nil {
			return err
		}
	}
	return nil
}

// Draw draws the dungeon, one filled square per cell.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	size := float32(config.TileSize)
	g.grid.Each(func(row, col int, c components.Cell) {
		def := g.tiles.Get(c)
		vector.DrawFilledRect(screen, float32(col)*size, float32(row)*size, size, size, def.FG, false)
	})

	if g.showHelp {
		ebitenutil.DebugPrint(screen, helpText())
		return
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Seed: %d  (%s for help)", g.seed, KeymapHelp.Label))
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions(g.grid.Width, g.grid.Height)
}

func helpText() string {
	lines := []string{"Keymaps", ""}
	for _, keymap := range Keymaps {
		lines = append(lines, keymap.HelpMessage())
	}
	return strings.Join(lines, "\n")
}
