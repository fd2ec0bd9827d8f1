package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testArena = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="8" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Walls">
  <object id="1" x="0" y="0" width="160" height="16"/>
  <object id="2" x="32" y="32" width="0" height="0"/>
 </objectgroup>
 <objectgroup id="2" name="NavPoints">
  <object id="3" x="32" y="48"><point/></object>
  <object id="4" x="64" y="64" width="16" height="16"/>
 </objectgroup>
 <objectgroup id="3" name="EnemySpawns">
  <object id="5" x="80" y="80">
   <properties>
    <property name="enemyType" value="Moblin"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="4" name="TargetRoute">
  <object id="6" x="16" y="16"><polyline points="0,0 32,0 32,32"/></object>
 </objectgroup>
</map>
`

func TestLoadArena(t *testing.T) {
	fsys := fstest.MapFS{"arenas/test.tmx": {Data: []byte(testArena)}}

	arena, err := LoadArena(fsys, "arenas/test.tmx", 16)
	require.NoError(t, err)

	assert.Equal(t, "test", arena.Name)
	assert.InDelta(t, 10, arena.Width, 1e-9)
	assert.InDelta(t, 8, arena.Depth, 1e-9)

	// Zero-sized wall objects are skipped.
	require.Len(t, arena.Walls, 1)
	assert.Equal(t, Wall{X: 0, Z: 0, W: 10, D: 1}, arena.Walls[0])

	require.Len(t, arena.NavPoints, 2)
	assert.Equal(t, gamemath.Vec3{X: 2, Z: 3}, arena.NavPoints[0])
	assert.Equal(t, gamemath.Vec3{X: 4.5, Z: 4.5}, arena.NavPoints[1])

	require.Len(t, arena.EnemySpawns, 1)
	assert.Equal(t, "Moblin", arena.EnemySpawns[0].EnemyType)
	assert.Equal(t, gamemath.Vec3{X: 5, Z: 5}, arena.EnemySpawns[0].Position)

	assert.Equal(t, []gamemath.Vec3{{X: 1, Z: 1}, {X: 3, Z: 1}, {X: 3, Z: 3}}, arena.TargetRoute)

	// No TargetSpawn group: the target starts in the middle.
	assert.Equal(t, gamemath.Vec3{X: 5, Z: 4}, arena.TargetSpawn)
}

func TestLoadArenaErrors(t *testing.T) {
	fsys := fstest.MapFS{"arenas/test.tmx": {Data: []byte(testArena)}}

	_, err := LoadArena(fsys, "arenas/missing.tmx", 16)
	assert.Error(t, err)

	_, err = LoadArena(fsys, "arenas/test.tmx", 0)
	assert.Error(t, err)
}

func TestLoadAllArenas(t *testing.T) {
	fsys := fstest.MapFS{
		"arenas/b.tmx": {Data: []byte(testArena)},
		"arenas/a.tmx": {Data: []byte(testArena)},
	}

	arenas, names, err := LoadAllArenas(fsys, "arenas", 16)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Len(t, arenas, 2)

	_, _, err = LoadAllArenas(fstest.MapFS{}, "arenas", 16)
	assert.Error(t, err)
}
