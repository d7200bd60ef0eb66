// Package scaffold writes the per-day solution and test stubs and keeps the
// solutions manifest in sync. Existing files are never touched, so repeated
// runs are safe.
package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

// Result reports what a Generate run did, by file path.
type Result struct {
	Created []string
	Skipped []string
}

type dayParams struct {
	Year   int
	Day    int
	Padded string
}

// Paths returns the conventional solution and test file paths for a day
// under the given solutions root.
func Paths(root string, year, day int) (solution, test string) {
	dir := filepath.Join(root, fmt.Sprintf("aoc%d", year))
	solution = filepath.Join(dir, fmt.Sprintf("advent_%d_%02d.go", year, day))
	test = filepath.Join(dir, fmt.Sprintf("test_%d_%02d.go", year, day))
	return solution, test
}

// Generate writes the solution and test stubs for (year, day) under root,
// creating the year directory as needed, then regenerates the manifest.
// Files that already exist are reported as skipped and left untouched.
func Generate(root string, year, day int) (*Result, error) {
	if year < 2015 {
		return nil, fmt.Errorf("invalid year %d", year)
	}
	if day < 1 || day > 25 {
		return nil, fmt.Errorf("invalid day %d: must be 1..25", day)
	}

	params := dayParams{Year: year, Day: day, Padded: fmt.Sprintf("%02d", day)}
	solution, test := Paths(root, year, day)
	if err := os.MkdirAll(filepath.Dir(solution), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir year dir: %w", err)
	}

	res := &Result{}
	files := []struct {
		path string
		tmpl *template.Template
	}{
		{solution, solutionTmpl},
		{test, testTmpl},
	}
	for _, f := range files {
		if _, err := os.Stat(f.path); err == nil {
			res.Skipped = append(res.Skipped, f.path)
			continue
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat %s: %w", f.path, err)
		}
		var buf bytes.Buffer
		if err := f.tmpl.Execute(&buf, params); err != nil {
			return nil, fmt.Errorf("render %s: %w", filepath.Base(f.path), err)
		}
		if err := os.WriteFile(f.path, buf.Bytes(), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", f.path, err)
		}
		res.Created = append(res.Created, f.path)
	}

	if err := WriteManifest(root); err != nil {
		return nil, err
	}
	return res, nil
}
