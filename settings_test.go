package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSettingsRoundTrip(t *testing.T) {
	resetHost(t)
	gs.Resizable = false
	gs.ConsoleTimestamps = true
	gs.WindowWidth = 1024
	saveSettings()

	gs = gsdef
	if !loadSettings() {
		t.Fatalf("settings not loaded")
	}
	if gs.Resizable || !gs.ConsoleTimestamps || gs.WindowWidth != 1024 {
		t.Fatalf("unexpected settings %+v", gs)
	}
	if _, err := os.Stat(filepath.Join(dataDirPath, settingsFile+".tmp")); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind")
	}
}

func TestLoadSettingsRejectsOtherVersion(t *testing.T) {
	resetHost(t)
	path := filepath.Join(dataDirPath, settingsFile)
	if err := os.WriteFile(path, []byte("version: 99\nresizable: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if loadSettings() {
		t.Fatalf("version 99 accepted")
	}
	if !gs.Resizable {
		t.Fatalf("settings changed by a rejected file")
	}
}

func TestLoadSettingsClampsWindow(t *testing.T) {
	resetHost(t)
	path := filepath.Join(dataDirPath, settingsFile)
	if err := os.WriteFile(path, []byte("version: 1\nwindow_width: 10\nwindow_height: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !loadSettings() {
		t.Fatalf("settings not loaded")
	}
	if gs.WindowWidth != screenWidth || gs.WindowHeight != screenHeight {
		t.Fatalf("window %dx%d not clamped", gs.WindowWidth, gs.WindowHeight)
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	resetHost(t)
	if loadSettings() {
		t.Fatalf("missing file reported as loaded")
	}
}

func TestConsoleKeepsNewest(t *testing.T) {
	resetHost(t)
	for i := 0; i < maxMessages+5; i++ {
		consoleMessage("line")
	}
	consoleMessage("")
	consoleMessage("last")
	if got := len(getConsoleMessages()); got != maxMessages {
		t.Fatalf("kept %d messages, want %d", got, maxMessages)
	}
	recent := recentConsoleMessages(2)
	if len(recent) != 2 || recent[1] != "last" {
		t.Fatalf("recent = %v", recent)
	}
}

func TestConsoleTimestamps(t *testing.T) {
	resetHost(t)
	gs.ConsoleTimestamps = true
	consoleMessage("hello")
	msgs := recentConsoleMessages(1)
	if len(msgs) != 1 || !strings.HasPrefix(msgs[0], "[") || !strings.HasSuffix(msgs[0], "] hello") {
		t.Fatalf("timestamped message = %v", msgs)
	}
}

// The embedded file lists the newest release first.
func TestEmbeddedVersionIsNewest(t *testing.T) {
	if clientVersion != 2 {
		t.Fatalf("clientVersion = %d, want 2", clientVersion)
	}
	if changelog == "" {
		t.Fatalf("changelog empty")
	}
}
