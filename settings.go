package main

import (
	"log"
	"os"
	"path/filepath"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

const SETTINGS_VERSION = 1

var gs settings = gsdef

var gsdef settings = settings{
	Version: SETTINGS_VERSION,

	Resizable:    true,
	AutoLogin:    true,
	WindowWidth:  screenWidth,
	WindowHeight: screenHeight,
	ShowHelp:     true,
}

type settings struct {
	Version int `yaml:"version"`

	Resizable         bool `yaml:"resizable"`
	AutoLogin         bool `yaml:"auto_login"`
	ConsoleTimestamps bool `yaml:"console_timestamps"`
	ShowHelp          bool `yaml:"show_help"`

	WindowWidth  int `yaml:"window_width"`
	WindowHeight int `yaml:"window_height"`
}

var settingsDirty atomic.Bool

const (
	settingsFile = "settings.yaml"
	configFile   = "config.yaml"
)

var dataDirPath = "data"

func loadSettings() bool {
	path := filepath.Join(dataDirPath, settingsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}

	tmp := gsdef
	if err := yaml.Unmarshal(data, &tmp); err != nil {
		log.Printf("parse settings: %v", err)
		return false
	}

	if tmp.Version != SETTINGS_VERSION {
		log.Printf("settings version %d, want %d", tmp.Version, SETTINGS_VERSION)
		return false
	}
	gs = tmp
	clampWindowSettings()
	return true
}

func saveSettings() {
	data, err := yaml.Marshal(&gs)
	if err != nil {
		log.Printf("save settings: %v", err)
		return
	}
	if err := os.MkdirAll(dataDirPath, 0o755); err != nil {
		log.Printf("save settings: %v", err)
		return
	}
	path := filepath.Join(dataDirPath, settingsFile)
	if err := os.WriteFile(path+".tmp", data, 0644); err != nil {
		log.Printf("save settings: %v", err)
		return
	}
	if err := os.Rename(path+".tmp", path); err != nil {
		log.Printf("save settings: %v", err)
	}
}

func clampWindowSettings() {
	if gs.WindowWidth < screenWidth/2 {
		gs.WindowWidth = screenWidth
	}
	if gs.WindowHeight < screenHeight/2 {
		gs.WindowHeight = screenHeight
	}
}

func saveConfig() {
	if configs == nil {
		return
	}
	if err := configs.Save(filepath.Join(dataDirPath, configFile)); err != nil {
		log.Printf("save config: %v", err)
	}
}
