package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Keymap binds a key to a viewer action
type Keymap struct {
	Key         ebiten.Key
	Label       string
	Description string
}

var (
	KeymapQuit  = Keymap{Key: ebiten.KeyQ, Label: "q", Description: "Quits the viewer."}
	KeymapHelp  = Keymap{Key: ebiten.KeySlash, Label: "?", Description: "Shows or hides the keymaps."}
	KeymapStart = Keymap{Key: ebiten.KeyN, Label: "n", Description: "Generates a new dungeon."}
)

// Keymaps lists the bindings in help order
var Keymaps = []Keymap{KeymapQuit, KeymapHelp, KeymapStart}

// HelpMessage formats the binding for the help overlay
func (k Keymap) HelpMessage() string {
	return fmt.Sprintf("%s    %s", k.Label, k.Description)
}
