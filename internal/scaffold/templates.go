package scaffold

import "text/template"

// The two blueprints for a new day: a solution file whose parts return
// solve.ErrUnsolved, and a paired test file whose expected answers are unset.
// Function names carry the year/day suffix because every day of a year
// shares one package.

var solutionTmpl = template.Must(template.New("solution").Parse(
	`// Advent of Code {{.Year}}: Day {{.Day}}.

package aoc{{.Year}}

import "aockit/internal/solve"

func init() {
	solve.Register(solve.Solution{
		Year:  {{.Year}},
		Day:   {{.Day}},
		Part1: part1of{{.Year}}d{{.Padded}},
		Part2: part2of{{.Year}}d{{.Padded}},
	})
}

func part1of{{.Year}}d{{.Padded}}(data string) (any, error) {
	return nil, solve.ErrUnsolved
}

func part2of{{.Year}}d{{.Padded}}(data string) (any, error) {
	return nil, solve.ErrUnsolved
}
`))

var testTmpl = template.Must(template.New("test").Parse(
	`// Tests for AOC {{.Year}}-{{.Padded}}.

package aoc{{.Year}}

import "aockit/internal/solve"

const sample{{.Year}}d{{.Padded}} = ` + "``" + `

func init() {
	solve.RegisterTests(solve.Tests{
		Year:  {{.Year}},
		Day:   {{.Day}},
		Part1: testPart1of{{.Year}}d{{.Padded}},
		Part2: testPart2of{{.Year}}d{{.Padded}},
	})
}

func testPart1of{{.Year}}d{{.Padded}}() error {
	return solve.Expect(part1of{{.Year}}d{{.Padded}}, sample{{.Year}}d{{.Padded}}, nil)
}

func testPart2of{{.Year}}d{{.Padded}}() error {
	return solve.Expect(part2of{{.Year}}d{{.Padded}}, sample{{.Year}}d{{.Padded}}, nil)
}
`))
