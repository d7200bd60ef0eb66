// Package main implements aoc, the runner for per-day Advent of Code
// solutions registered in this repository.
//
// # Features
//
//   - Runs one or both parts of a day's solution against the real input
//   - Optional answer submission to adventofcode.com
//   - Test mode that checks solutions against their sample inputs offline
//   - Year and day default to the current puzzle calendar
//
// # Usage
//
//	aoc [--year Y] [--day D] [--part N]... [--test | --submit] [--config PATH]
//
// # Configuration
//
// Configuration is loaded from <user config dir>/aockit/config.json or the
// path given with --config. The session token comes from the AOC_SESSION
// environment variable (a .env file is honored) or the config file.
package main
