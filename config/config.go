// Package config stores plugin settings grouped by plugin and persists
// them as YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"clickorbs/pluginapi"
)

const fileVersion = 1

// Item describes a boolean option shown to the user.
type Item struct {
	Key         string
	Name        string
	Description string
	Default     bool
}

// Poster receives change notifications.
type Poster interface {
	Post(ev pluginapi.Event)
}

type group struct {
	name   string
	items  []Item
	values map[string]bool
}

// Manager holds config groups. It is safe for concurrent use.
type Manager struct {
	mu     sync.RWMutex
	groups map[string]*group
	bus    Poster
	dirty  bool
}

// NewManager returns an empty Manager posting changes to bus. bus may be nil.
func NewManager(bus Poster) *Manager {
	return &Manager{groups: make(map[string]*group), bus: bus}
}

// foldGroup canonicalises a group name for case-insensitive lookups.
func foldGroup(name string) string {
	return cases.Fold().String(name)
}

// SameGroup reports whether a and b name the same config group.
func SameGroup(a, b string) bool {
	return foldGroup(a) == foldGroup(b)
}

func (m *Manager) groupLocked(name string) *group {
	k := foldGroup(name)
	g := m.groups[k]
	if g == nil {
		g = &group{name: name, values: map[string]bool{}}
		m.groups[k] = g
	}
	return g
}

// Register declares the items of a group. Registering a group again
// replaces its item list but keeps stored values.
func (m *Manager) Register(groupName string, items ...Item) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g := m.groupLocked(groupName)
	g.name = groupName
	g.items = append([]Item(nil), items...)
}

// Items returns the registered items of a group.
func (m *Manager) Items(groupName string) []Item {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g := m.groups[foldGroup(groupName)]
	if g == nil {
		return nil
	}
	return append([]Item(nil), g.items...)
}

// Groups returns the registered group names, sorted.
func (m *Manager) Groups() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.groups))
	for _, g := range m.groups {
		names = append(names, g.name)
	}
	sort.Strings(names)
	return names
}

// Bool returns the stored value of key, falling back to the item default.
func (m *Manager) Bool(groupName, key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g := m.groups[foldGroup(groupName)]
	if g == nil {
		return false
	}
	if v, ok := g.values[key]; ok {
		return v
	}
	for _, it := range g.items {
		if it.Key == key {
			return it.Default
		}
	}
	return false
}

// SetBool stores v and posts ConfigChanged when the effective value changed.
func (m *Manager) SetBool(groupName, key string, v bool) {
	old := m.Bool(groupName, key)

	m.mu.Lock()
	g := m.groupLocked(groupName)
	prev, stored := g.values[key]
	g.values[key] = v
	if !stored || prev != v {
		m.dirty = true
	}
	name := g.name
	m.mu.Unlock()

	if old == v || m.bus == nil {
		return
	}
	m.bus.Post(pluginapi.ConfigChanged{
		Group:    name,
		Key:      key,
		OldValue: strconv.FormatBool(old),
		NewValue: strconv.FormatBool(v),
	})
}

// Reset removes the stored value so the item default applies again.
func (m *Manager) Reset(groupName, key string) {
	old := m.Bool(groupName, key)
	m.mu.Lock()
	g := m.groups[foldGroup(groupName)]
	if g == nil {
		m.mu.Unlock()
		return
	}
	if _, ok := g.values[key]; ok {
		delete(g.values, key)
		m.dirty = true
	}
	name := g.name
	m.mu.Unlock()

	if v := m.Bool(groupName, key); v != old && m.bus != nil {
		m.bus.Post(pluginapi.ConfigChanged{
			Group:    name,
			Key:      key,
			OldValue: strconv.FormatBool(old),
			NewValue: strconv.FormatBool(v),
		})
	}
}

// Dirty reports whether values changed since the last Load or Save.
func (m *Manager) Dirty() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dirty
}

type fileFormat struct {
	Version int                        `yaml:"version"`
	Groups  map[string]map[string]bool `yaml:"groups"`
}

// Load reads stored values from path. A missing file leaves defaults in
// place and is not an error. Load does not post change events.
func (m *Manager) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	if f.Version != fileVersion {
		return fmt.Errorf("config %s: unsupported version %d", path, f.Version)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for name, values := range f.Groups {
		g := m.groupLocked(name)
		for k, v := range values {
			g.values[k] = v
		}
	}
	m.dirty = false
	return nil
}

// Save writes stored values to path via a temporary file.
func (m *Manager) Save(path string) error {
	m.mu.RLock()
	f := fileFormat{Version: fileVersion, Groups: map[string]map[string]bool{}}
	for _, g := range m.groups {
		if len(g.values) == 0 {
			continue
		}
		values := make(map[string]bool, len(g.values))
		for k, v := range g.values {
			values[k] = v
		}
		f.Groups[g.name] = values
	}
	m.mu.RUnlock()

	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing config %s: %w", path, err)
	}

	m.mu.Lock()
	m.dirty = false
	m.mu.Unlock()
	return nil
}
