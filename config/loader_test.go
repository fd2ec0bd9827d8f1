package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPartialTypeInheritsDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	err := Apply([]byte(`
enemy:
  types:
    Moblin:
      attack_range: 4
    Lizalfos:
      alert_speed: 9
health:
  flash_duration: 0.25
`))
	require.NoError(t, err)

	moblin, name := EnemyType("Moblin")
	assert.Equal(t, "Moblin", name)
	assert.Equal(t, 4.0, moblin.AttackRange)
	assert.Equal(t, 6.0, moblin.CircleRadius, "unset fields keep built-in values")
	assert.Equal(t, Purple, moblin.TintColor)

	lizalfos, _ := EnemyType("Lizalfos")
	assert.Equal(t, "Lizalfos", lizalfos.Name)
	assert.Equal(t, 9.0, lizalfos.AlertSpeed)
	assert.Equal(t, 30.0, lizalfos.DetectionRange, "new types start from the default type")

	_, ok := Enemy.Types["Bokoblin"]
	assert.True(t, ok)
	assert.Equal(t, 0.25, Health.FlashDuration)
	assert.Equal(t, 0.5, Navigation.CellSize)
}

func TestApplyRejectsUnknownDefaultType(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	err := Apply([]byte("enemy:\n  default_type: Lynel\n"))
	assert.Error(t, err)
}

func TestApplyRejectsBadYAML(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	assert.Error(t, Apply([]byte("enemy: [")))
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	require.NoError(t, Load(filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Equal(t, 60, Sim.TickRate)
}

func TestLoadFile(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sim:\n  tick_rate: 30\n  seed: 7\n"), 0o644))

	require.NoError(t, Load(path))
	assert.Equal(t, 30, Sim.TickRate)
	assert.Equal(t, int64(7), Sim.Seed)
}

func TestMarshalRoundTripsThroughApply(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Physics.Drag = 9
	data, err := Marshal()
	require.NoError(t, err)

	Reset()
	require.NoError(t, Apply(data))
	assert.Equal(t, 9.0, Physics.Drag)
	assert.Len(t, Enemy.Types, 3)
}

func TestEnemyTypeFallsBackToDefault(t *testing.T) {
	Reset()

	typ, name := EnemyType("Nonexistent")
	assert.Equal(t, "Bokoblin", name)
	assert.Equal(t, "Bokoblin", typ.Name)
}

func TestStateIDString(t *testing.T) {
	assert.Equal(t, "Patrol", StatePatrol.String())
	assert.Equal(t, "Chase", StateChase.String())
	assert.Equal(t, "Circle", StateCircle.String())
	assert.Equal(t, "Unknown", StateID(9).String())
}
