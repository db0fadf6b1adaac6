package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"rogue-dungeon/config"
	"rogue-dungeon/generation"
)

func main() {
	// Environment first, flags override it
	dungeonCfg := generation.DefaultConfig()
	if err := config.ParseEnv(&dungeonCfg); err != nil {
		log.Fatal(err)
	}

	var (
		seed     int64
		strategy string
		ascii    bool
		width    int
		height   int
	)
	flag.Int64Var(&seed, "seed", 0, "random seed for reproducibility (0 = random)")
	flag.StringVar(&strategy, "strategy", dungeonCfg.Strategy.String(), "generation strategy (bsp, rooms)")
	flag.BoolVar(&ascii, "ascii", false, "print the dungeon to stdout instead of opening a window")
	flag.IntVar(&width, "width", config.MapWidth, "dungeon width in cells")
	flag.IntVar(&height, "height", config.MapHeight, "dungeon height in cells")
	flag.Parse()

	if err := dungeonCfg.Strategy.UnmarshalText([]byte(strategy)); err != nil {
		log.Fatal(err)
	}
	if seed != 0 {
		dungeonCfg = dungeonCfg.WithSeed(seed)
	} else if dungeonCfg.Seed == nil {
		dungeonCfg = dungeonCfg.WithSeed(time.Now().UnixNano())
	}

	generator, err := generation.NewDungeonGenerator(width, height, dungeonCfg)
	if err != nil {
		log.Fatalf("Failed to create dungeon generator: %v", err)
	}
	generator.SetLogFunc(func(msg string) { log.Println(msg) })

	if ascii {
		grid, err := generator.Generate()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(grid)
		return
	}

	game, err := NewGame(generator, *dungeonCfg.Seed)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.GetScreenDimensions(width, height))
	ebiten.SetWindowTitle(fmt.Sprintf("Rogue Dungeon - %s", dungeonCfg.Strategy))
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
