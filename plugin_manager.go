package main

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"clickorbs/config"
	"clickorbs/pluginapi"
)

// configurable plugins declare the options they store.
type configurable interface {
	ConfigGroup() (string, []config.Item)
}

var (
	runningMu      sync.Mutex
	runningPlugins []pluginapi.Plugin
)

// startPlugin registers the plugin's config and starts it unless it
// conflicts with a running plugin.
func startPlugin(p pluginapi.Plugin) error {
	d := p.Descriptor()

	runningMu.Lock()
	defer runningMu.Unlock()
	for _, r := range runningPlugins {
		rd := r.Descriptor()
		if rd.Name == d.Name {
			return fmt.Errorf("plugin %s already running", d.Name)
		}
		if conflicts(d, rd) || conflicts(rd, d) {
			return fmt.Errorf("plugin %s conflicts with %s", d.Name, rd.Name)
		}
	}

	if c, ok := p.(configurable); ok {
		group, items := c.ConfigGroup()
		configs.Register(group, items...)
	}
	if err := p.StartUp(); err != nil {
		return fmt.Errorf("start %s: %w", d.Name, err)
	}
	runningPlugins = append(runningPlugins, p)
	log.Printf("[plugin] started %s", d.Name)
	return nil
}

func conflicts(a, b pluginapi.Descriptor) bool {
	for _, c := range a.Conflicts {
		if strings.EqualFold(c, b.Name) {
			return true
		}
	}
	return false
}

// stopPlugins shuts plugins down in reverse start order.
func stopPlugins() {
	runningMu.Lock()
	defer runningMu.Unlock()
	for i := len(runningPlugins) - 1; i >= 0; i-- {
		p := runningPlugins[i]
		if err := p.ShutDown(); err != nil {
			log.Printf("[plugin] stop %s: %v", p.Descriptor().Name, err)
			continue
		}
		log.Printf("[plugin] stopped %s", p.Descriptor().Name)
	}
	runningPlugins = nil
}

func runningPluginNames() []string {
	runningMu.Lock()
	defer runningMu.Unlock()
	names := make([]string, len(runningPlugins))
	for i, p := range runningPlugins {
		names[i] = p.Descriptor().Name
	}
	return names
}
