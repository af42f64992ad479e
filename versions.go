package main

import (
	"encoding/json"
	"log"

	_ "embed"
)

//go:embed data/versions.json
var versionsJSON []byte

var (
	clientVersion int
	changelog     string
)

type versionEntry struct {
	Version   int    `json:"version"`
	Changelog string `json:"changelog"`
}

type versionFile struct {
	Versions []versionEntry `json:"versions"`
}

// cmd/release keeps the newest entry first.
func init() {
	var vf versionFile
	if err := json.Unmarshal(versionsJSON, &vf); err != nil {
		log.Printf("parse versions.json: %v", err)
		return
	}
	if len(vf.Versions) == 0 {
		return
	}
	clientVersion = vf.Versions[0].Version
	changelog = vf.Versions[0].Changelog
}
