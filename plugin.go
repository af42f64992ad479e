package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// PluginCommandHandler handles the arguments of a slash command.
type PluginCommandHandler func(args string)

var (
	pluginMu            sync.RWMutex
	pluginCommands      = map[string]PluginCommandHandler{}
	pluginCommandOwners = map[string]string{}
	pluginDisplayNames  = map[string]string{}
)

// Script plugins import "gt"; the key is "importPath/pkgName".
func exportsForPlugin(owner string) interp.Exports {
	return interp.Exports{
		"gt/gt": {
			"Logf":          reflect.ValueOf(pluginLogf),
			"Console":       reflect.ValueOf(consoleMessage),
			"RunCommand":    reflect.ValueOf(runCommand),
			"ConfigBool":    reflect.ValueOf(pluginConfigBool),
			"SetConfigBool": reflect.ValueOf(pluginSetConfigBool),
			"Plugins":       reflect.ValueOf(runningPluginNames),
			"ClientVersion": reflect.ValueOf(&clientVersion).Elem(),
			"RegisterCommand": reflect.ValueOf(func(name string, handler func(args string)) {
				pluginRegisterCommand(owner, name, handler)
			}),
		},
	}
}

func pluginLogf(format string, args ...interface{}) {
	log.Printf("[plugin] "+format, args...)
}

func pluginConfigBool(group, key string) bool {
	return configs.Bool(group, key)
}

func pluginSetConfigBool(group, key string, v bool) {
	configs.SetBool(group, key, v)
}

// pluginRegisterCommand registers a slash command such as "/orbs". The
// leading slash is optional and names match case-insensitively.
func pluginRegisterCommand(owner, name string, handler PluginCommandHandler) {
	if name == "" || handler == nil {
		return
	}
	key := strings.ToLower(strings.TrimPrefix(name, "/"))
	pluginMu.Lock()
	if _, exists := pluginCommands[key]; exists {
		pluginMu.Unlock()
		consoleMessage(fmt.Sprintf("[plugin] command conflict: /%s already registered", key))
		return
	}
	pluginCommands[key] = handler
	pluginCommandOwners[key] = owner
	pluginMu.Unlock()
	log.Printf("[plugin] command registered: /%s", key)
}

// runCommand dispatches a slash command line. It reports whether a
// handler ran.
func runCommand(line string) bool {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "/") {
		return false
	}
	name, args, _ := strings.Cut(line[1:], " ")
	key := strings.ToLower(name)

	pluginMu.RLock()
	handler := pluginCommands[key]
	pluginMu.RUnlock()
	if handler == nil {
		consoleMessage("Unknown command: /" + key)
		return false
	}
	handler(strings.TrimSpace(args))
	return true
}

func commandNames() []string {
	pluginMu.RLock()
	defer pluginMu.RUnlock()
	names := make([]string, 0, len(pluginCommands))
	for k := range pluginCommands {
		names = append(names, "/"+k)
	}
	sort.Strings(names)
	return names
}

// scriptPluginSummary describes each loaded script plugin and the
// commands it owns, sorted by owner.
func scriptPluginSummary() []string {
	pluginMu.RLock()
	defer pluginMu.RUnlock()
	owners := make([]string, 0, len(pluginDisplayNames))
	for owner := range pluginDisplayNames {
		owners = append(owners, owner)
	}
	sort.Strings(owners)

	lines := make([]string, 0, len(owners))
	for _, owner := range owners {
		var cmds []string
		for cmd, o := range pluginCommandOwners {
			if o == owner {
				cmds = append(cmds, "/"+cmd)
			}
		}
		sort.Strings(cmds)
		line := fmt.Sprintf("%s (%s)", pluginDisplayNames[owner], owner)
		if len(cmds) > 0 {
			line += ": " + strings.Join(cmds, " ")
		}
		lines = append(lines, line)
	}
	return lines
}

// loadScriptPlugins interprets every .go file in dir and calls its Init.
func loadScriptPlugins(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("read plugin dir: %v", err)
		}
		return 0
	}
	loaded := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".go") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		src, err := os.ReadFile(path)
		if err != nil {
			log.Printf("read plugin %s: %v", path, err)
			continue
		}
		owner := strings.TrimSuffix(e.Name(), ".go")
		if err := loadPluginSource(owner, src); err != nil {
			consoleMessage("[plugin] load error for " + path + ": " + err.Error())
			continue
		}
		loaded++
	}
	return loaded
}

func loadPluginSource(owner string, src []byte) error {
	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return err
	}
	if err := i.Use(exportsForPlugin(owner)); err != nil {
		return err
	}
	if _, err := i.Eval(string(src)); err != nil {
		return err
	}
	name := owner
	if v, err := i.Eval("PluginName"); err == nil {
		if s, ok := v.Interface().(string); ok && s != "" {
			name = s
		}
	}
	pluginMu.Lock()
	pluginDisplayNames[owner] = name
	pluginMu.Unlock()

	if v, err := i.Eval("Init"); err == nil {
		if fn, ok := v.Interface().(func()); ok {
			fn()
		}
	}
	log.Printf("loaded plugin %s", name)
	consoleMessage("[plugin] loaded: " + name)
	return nil
}
