// Package solve holds the solution registry and the runner that dispatches
// run and test invocations to the per-day functions registered in it.
package solve

import (
	"errors"
	"fmt"
)

// ErrUnsolved is returned by scaffolded part functions until the user
// replaces the stub body with a real solution.
var ErrUnsolved = errors.New("not solved yet")

// PartFunc solves one part of a day's puzzle given its input.
type PartFunc func(input string) (any, error)

// TestFunc checks one part's solution against its sample input. A nil return
// means the test passed.
type TestFunc func() error

// Solution holds a day's part functions. A nil part is "not written yet" and
// is reported as missing rather than treated as an error at registration.
type Solution struct {
	Year  int
	Day   int
	Part1 PartFunc
	Part2 PartFunc
}

// Part returns the function for the given part number, nil when absent.
func (s Solution) Part(n int) PartFunc {
	switch n {
	case 1:
		return s.Part1
	case 2:
		return s.Part2
	}
	return nil
}

// Tests holds a day's test functions, registered separately from the
// solution so a missing test file stays distinguishable from a missing
// solution file.
type Tests struct {
	Year  int
	Day   int
	Part1 TestFunc
	Part2 TestFunc
}

// Part returns the test function for the given part number, nil when absent.
func (t Tests) Part(n int) TestFunc {
	switch n {
	case 1:
		return t.Part1
	case 2:
		return t.Part2
	}
	return nil
}

type dayKey struct {
	year, day int
}

// Registry maps (year, day) to registered solutions and tests.
type Registry struct {
	solutions map[dayKey]Solution
	tests     map[dayKey]Tests
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		solutions: make(map[dayKey]Solution),
		tests:     make(map[dayKey]Tests),
	}
}

// Default is the registry that generated day files bind into at init time.
var Default = NewRegistry()

// Register adds a day's solution. It panics on an invalid year or day and on
// duplicate registration; both indicate a broken generated file.
func (r *Registry) Register(s Solution) {
	k := checkDay(s.Year, s.Day)
	if _, ok := r.solutions[k]; ok {
		panic(fmt.Sprintf("solve: duplicate solution for AOC %d-%02d", s.Year, s.Day))
	}
	r.solutions[k] = s
}

// RegisterTests adds a day's tests. Same rules as Register.
func (r *Registry) RegisterTests(t Tests) {
	k := checkDay(t.Year, t.Day)
	if _, ok := r.tests[k]; ok {
		panic(fmt.Sprintf("solve: duplicate tests for AOC %d-%02d", t.Year, t.Day))
	}
	r.tests[k] = t
}

// Solution looks up the registered solution for (year, day).
func (r *Registry) Solution(year, day int) (Solution, bool) {
	s, ok := r.solutions[dayKey{year, day}]
	return s, ok
}

// Tests looks up the registered tests for (year, day).
func (r *Registry) Tests(year, day int) (Tests, bool) {
	t, ok := r.tests[dayKey{year, day}]
	return t, ok
}

func checkDay(year, day int) dayKey {
	if year < 2015 {
		panic(fmt.Sprintf("solve: invalid year %d", year))
	}
	if day < 1 || day > 25 {
		panic(fmt.Sprintf("solve: invalid day %d", day))
	}
	return dayKey{year, day}
}

// Register adds a solution to the default registry.
func Register(s Solution) { Default.Register(s) }

// RegisterTests adds tests to the default registry.
func RegisterTests(t Tests) { Default.RegisterTests(t) }
