package defs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	d := Default()

	assert.Equal(t, 3, d.Hero.Sprite)
	assert.Equal(t, 10.0, d.Hero.Speed)
	assert.Equal(t, 900.0, d.Hero.StartX)
	assert.Equal(t, 400.0, d.Hero.StartY)
	assert.Equal(t, 3, d.Tower.Life)
	assert.Equal(t, 100, d.Spawn.BaseDivisor)
	assert.Equal(t, 80, d.Spawn.BossInterval)
	assert.Equal(t, 100, d.Spawn.HardInterval)
	assert.Zero(t, d.Spawn.BossAfterTick)

	normal, ok := d.Enemy("normal")
	require.True(t, ok)
	assert.Equal(t, 6.0, normal.Speed)
	fast, ok := d.Enemy("fast")
	require.True(t, ok)
	assert.Equal(t, 10.0, fast.Speed)
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: abc\ntower:\n  life: 5\n  sprite: 1\n"), 0o644))

	d, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "abc", d.Seed)
	assert.Equal(t, 5, d.Tower.Life)
	assert.Equal(t, 10.0, d.Hero.Speed, "untouched sections keep defaults")
}

func TestLoadFileEmptyPath(t *testing.T) {
	d, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, Default(), d)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"unknown field": "hero:\n  speeed: 3\n",
		"bad divisor": `
hero: {speed: 1}
tower: {life: 1}
enemies: [{id: a, speed: 1}]
spawn: {base_divisor: 10, min_divisor: 0, boss_interval: 1, hard_interval: 1, baseline_enemy: a, boss_enemy: a, hard_enemy: a}
`,
		"unknown enemy": `
hero: {speed: 1}
tower: {life: 1}
enemies: [{id: a, speed: 1}]
spawn: {base_divisor: 10, min_divisor: 1, boss_interval: 1, hard_interval: 1, baseline_enemy: a, boss_enemy: a, hard_enemy: b}
`,
		"duplicate enemy": `
hero: {speed: 1}
tower: {life: 1}
enemies: [{id: a, speed: 1}, {id: a, speed: 2}]
spawn: {base_divisor: 10, min_divisor: 1, boss_interval: 1, hard_interval: 1, baseline_enemy: a, boss_enemy: a, hard_enemy: a}
`,
		"dead tower": "hero: {speed: 1}\ntower: {life: 0}\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(src))
			assert.Error(t, err)
		})
	}
}

func TestValidateWrapsSentinel(t *testing.T) {
	d := Default()
	d.Hero.Speed = 0
	assert.ErrorIs(t, d.Validate(), ErrInvalidDefinition)
}
