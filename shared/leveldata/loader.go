package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// Object group names read from arena files.
const (
	GroupWalls       = "Walls"
	GroupNavPoints   = "NavPoints"
	GroupEnemySpawns = "EnemySpawns"
	GroupTargetSpawn = "TargetSpawn"
	GroupTargetRoute = "TargetRoute"
	GroupSpawners    = "Spawners"
)

// LoadArena parses a TMX file into an Arena. Pixel coordinates are divided by
// pixelsPerUnit. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string, pixelsPerUnit float64) (*Arena, error) {
	if pixelsPerUnit <= 0 {
		return nil, fmt.Errorf("load arena %s: pixels per unit must be positive, got %v", tmxPath, pixelsPerUnit)
	}
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	scale := 1 / pixelsPerUnit
	arena := &Arena{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: float64(levelMap.Width*levelMap.TileWidth) * scale,
		Depth: float64(levelMap.Height*levelMap.TileHeight) * scale,
	}

	// Markers are placed at the object's centre; point objects have no size.
	center := func(o *tiled.Object) gamemath.Vec3 {
		return gamemath.Vec3{X: (o.X + o.Width/2) * scale, Z: (o.Y + o.Height/2) * scale}
	}

	targetSet := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupWalls:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				arena.Walls = append(arena.Walls, Wall{
					X: o.X * scale,
					Z: o.Y * scale,
					W: o.Width * scale,
					D: o.Height * scale,
				})
			}
		case GroupNavPoints:
			for _, o := range og.Objects {
				arena.NavPoints = append(arena.NavPoints, center(o))
			}
		case GroupEnemySpawns:
			for _, o := range og.Objects {
				arena.EnemySpawns = append(arena.EnemySpawns, EnemySpawn{
					Position:  center(o),
					EnemyType: o.Properties.GetString("enemyType"),
				})
			}
		case GroupTargetSpawn:
			if len(og.Objects) > 0 {
				arena.TargetSpawn = center(og.Objects[0])
				targetSet = true
			}
		case GroupTargetRoute:
			for _, o := range og.Objects {
				if len(o.PolyLines) == 0 {
					continue
				}
				polyline := o.PolyLines[0]
				if polyline.Points == nil {
					continue
				}
				for _, p := range *polyline.Points {
					arena.TargetRoute = append(arena.TargetRoute, gamemath.Vec3{
						X: (o.X + p.X) * scale,
						Z: (o.Y + p.Y) * scale,
					})
				}
				break
			}
		case GroupSpawners:
			for _, o := range og.Objects {
				arena.Spawners = append(arena.Spawners, SpawnerSpawn{
					Position:      center(o),
					EnemyType:     o.Properties.GetString("enemyType"),
					SpawnInterval: o.Properties.GetFloat("spawnInterval"),
					MaxEnemies:    o.Properties.GetInt("maxEnemies"),
				})
			}
		}
	}

	if !targetSet {
		arena.TargetSpawn = gamemath.Vec3{X: arena.Width / 2, Z: arena.Depth / 2}
	}

	return arena, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys, loads each, and
// returns a map keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string, pixelsPerUnit float64) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		arena, err := LoadArena(fsys, path, pixelsPerUnit)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[arena.Name] = arena
		names = append(names, arena.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
