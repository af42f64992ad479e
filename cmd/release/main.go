// Command release adds a changelog entry to data/versions.json. The new
// entry takes the next version number and goes to the top of the list.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

type Version struct {
	Version   int    `json:"version"`
	Changelog string `json:"changelog"`
}

type VersionFile struct {
	Versions []Version `json:"versions"`
}

func main() {
	var (
		versionPath = flag.String("version-file", "data/versions.json", "path to versions json")
		changelog   = flag.String("changelog", "", "changelog entry for this release")
		dryRun      = flag.Bool("n", false, "print the result instead of writing it")
	)
	flag.Parse()

	if strings.TrimSpace(*changelog) == "" {
		fmt.Fprintln(os.Stderr, "changelog is required")
		os.Exit(1)
	}

	vf, err := loadVersionFile(*versionPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "load version file:", err)
		os.Exit(1)
	}

	vf = addRelease(vf, *changelog)

	if *dryRun {
		b, _ := json.MarshalIndent(vf, "", "  ")
		fmt.Println(string(b))
		return
	}
	if err := saveVersionFile(*versionPath, vf); err != nil {
		fmt.Fprintln(os.Stderr, "save version file:", err)
		os.Exit(1)
	}
	fmt.Printf("released version %d\n", vf.Versions[0].Version)
}

func nextVersion(vf VersionFile) int {
	next := 1
	for _, v := range vf.Versions {
		if v.Version >= next {
			next = v.Version + 1
		}
	}
	return next
}

// addRelease prepends a new entry so the file reads newest first.
func addRelease(vf VersionFile, changelog string) VersionFile {
	entry := Version{Version: nextVersion(vf), Changelog: strings.TrimSpace(changelog)}
	vf.Versions = append([]Version{entry}, vf.Versions...)
	return vf
}

func loadVersionFile(path string) (VersionFile, error) {
	var vf VersionFile
	b, err := os.ReadFile(path)
	if err != nil {
		return vf, err
	}
	if len(b) == 0 {
		return vf, nil
	}
	if err := json.Unmarshal(b, &vf); err != nil {
		return vf, err
	}
	return vf, nil
}

func saveVersionFile(path string, vf VersionFile) error {
	b, err := json.MarshalIndent(vf, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	if err := os.WriteFile(path+".tmp", b, 0o644); err != nil {
		return err
	}
	return os.Rename(path+".tmp", path)
}
