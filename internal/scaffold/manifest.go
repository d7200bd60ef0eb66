package scaffold

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
)

var reYearDir = regexp.MustCompile(`^aoc(20\d{2})$`)

// WriteManifest regenerates <root>/solutions.go, the blank-import manifest
// that pulls every year package into the build so its init-time
// registrations run. The file is only rewritten when its content changes,
// which keeps repeated scaffolding runs from churning timestamps.
func WriteManifest(root string) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("scan solutions dir: %w", err)
	}
	var years []string
	for _, e := range entries {
		if e.IsDir() && reYearDir.MatchString(e.Name()) {
			years = append(years, e.Name())
		}
	}
	sort.Strings(years)

	importBase := path.Join("aockit", filepath.Base(filepath.Clean(root)))

	var buf bytes.Buffer
	buf.WriteString("// Code generated by aocgen. DO NOT EDIT.\n\n")
	buf.WriteString("// Package " + filepath.Base(filepath.Clean(root)) + " pulls every year's day files into the build so their\n")
	buf.WriteString("// registrations run before the runner dispatches.\n")
	buf.WriteString("package " + filepath.Base(filepath.Clean(root)) + "\n")
	if len(years) > 0 {
		buf.WriteString("\nimport (\n")
		for _, y := range years {
			buf.WriteString("\t_ \"" + importBase + "/" + y + "\"\n")
		}
		buf.WriteString(")\n")
	}

	manifest := filepath.Join(root, "solutions.go")
	if old, err := os.ReadFile(manifest); err == nil && bytes.Equal(old, buf.Bytes()) {
		return nil
	}
	if err := os.WriteFile(manifest, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
