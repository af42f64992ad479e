package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clickorbs/pluginapi"
)

type recorder struct {
	events []pluginapi.Event
}

func (r *recorder) Post(ev pluginapi.Event) { r.events = append(r.events, ev) }

const testGroup = "orbs"

func newTestManager(bus Poster) *Manager {
	m := NewManager(bus)
	m.Register(testGroup,
		Item{Key: "hitpointsOrb", Name: "Hitpoints", Default: true},
		Item{Key: "specialAttackOrb", Name: "Special Attack", Default: false},
	)
	return m
}

func TestBoolFallsBackToDefault(t *testing.T) {
	m := newTestManager(nil)
	assert.True(t, m.Bool(testGroup, "hitpointsOrb"))
	assert.False(t, m.Bool(testGroup, "specialAttackOrb"))
	assert.False(t, m.Bool(testGroup, "missing"))
	assert.False(t, m.Bool("nogroup", "hitpointsOrb"))
}

func TestSetBoolPostsOnlyOnChange(t *testing.T) {
	rec := &recorder{}
	m := newTestManager(rec)

	m.SetBool(testGroup, "hitpointsOrb", true)
	assert.Empty(t, rec.events, "setting the default value must not notify")

	m.SetBool(testGroup, "hitpointsOrb", false)
	require.Len(t, rec.events, 1)
	assert.Equal(t, pluginapi.ConfigChanged{
		Group: testGroup, Key: "hitpointsOrb", OldValue: "true", NewValue: "false",
	}, rec.events[0])

	m.SetBool(testGroup, "hitpointsOrb", false)
	assert.Len(t, rec.events, 1)
	assert.False(t, m.Bool(testGroup, "hitpointsOrb"))
}

func TestGroupNamesAreCaseInsensitive(t *testing.T) {
	m := newTestManager(nil)
	m.SetBool("ORBS", "specialAttackOrb", true)
	assert.True(t, m.Bool("Orbs", "specialAttackOrb"))
	assert.True(t, SameGroup("ClickMinimapOrbs2D3A8AE", "clickminimaporbs2d3a8ae"))
	assert.False(t, SameGroup("orbs", "orbs2"))
	assert.Equal(t, []string{testGroup}, m.Groups())
}

func TestResetRestoresDefault(t *testing.T) {
	rec := &recorder{}
	m := newTestManager(rec)
	m.SetBool(testGroup, "hitpointsOrb", false)
	m.Reset(testGroup, "hitpointsOrb")
	assert.True(t, m.Bool(testGroup, "hitpointsOrb"))
	require.Len(t, rec.events, 2)
	assert.Equal(t, "true", rec.events[1].(pluginapi.ConfigChanged).NewValue)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	m := newTestManager(nil)
	m.SetBool(testGroup, "hitpointsOrb", false)
	m.SetBool(testGroup, "specialAttackOrb", true)
	require.True(t, m.Dirty())

	require.NoError(t, m.Save(path))
	assert.False(t, m.Dirty())
	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file must be renamed away")

	rec := &recorder{}
	loaded := newTestManager(rec)
	require.NoError(t, loaded.Load(path))
	assert.False(t, loaded.Bool(testGroup, "hitpointsOrb"))
	assert.True(t, loaded.Bool(testGroup, "specialAttackOrb"))
	assert.Empty(t, rec.events)
	assert.False(t, loaded.Dirty())
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	m := newTestManager(nil)
	require.NoError(t, m.Load(filepath.Join(t.TempDir(), "absent.yaml")))
	assert.True(t, m.Bool(testGroup, "hitpointsOrb"))
}

func TestLoadRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()

	garbage := filepath.Join(dir, "garbage.yaml")
	require.NoError(t, os.WriteFile(garbage, []byte("groups: [unclosed"), 0o644))
	assert.Error(t, newTestManager(nil).Load(garbage))

	future := filepath.Join(dir, "future.yaml")
	require.NoError(t, os.WriteFile(future, []byte("version: 99\n"), 0o644))
	assert.ErrorContains(t, newTestManager(nil).Load(future), "unsupported version")
}
