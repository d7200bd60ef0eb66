// Package main implements aocgen, the scaffolder for new Advent of Code
// days.
//
// # Features
//
//   - Writes a solution stub and a paired test stub for a day
//   - Never overwrites existing files; re-running only reports skips
//   - Keeps the solutions manifest in sync with the year directories
//   - Prints the puzzle description or opens the puzzle page instead
//
// # Usage
//
//	aocgen [--year Y] [--day D] [--docstring] [--open] [--root DIR] [--config PATH]
package main
