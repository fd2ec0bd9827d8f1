// Package assets embeds the arena files shipped with the simulation.
package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/enemyai/config"
	"github.com/automoto/enemyai/shared/leveldata"
)

//go:embed all:arenas
var arenaFS embed.FS

// ArenaDir is the directory inside FS holding the .tmx files.
const ArenaDir = "arenas"

// FS exposes the embedded arena files.
func FS() fs.FS {
	return arenaFS
}

// LoadArenas loads every embedded arena at the configured scale.
func LoadArenas() (map[string]*leveldata.Arena, []string, error) {
	return leveldata.LoadAllArenas(arenaFS, ArenaDir, config.Arena.PixelsPerUnit)
}

// LoadArena loads a single embedded arena by name.
func LoadArena(name string) (*leveldata.Arena, error) {
	path := fmt.Sprintf("%s/%s.tmx", ArenaDir, name)
	return leveldata.LoadArena(arenaFS, path, config.Arena.PixelsPerUnit)
}
