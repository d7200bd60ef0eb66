package solve

import (
	"context"
	"fmt"
	"io"

	"aockit/internal/logging"
)

// Service is the slice of the puzzle website the runner needs: input
// retrieval and answer submission.
type Service interface {
	Input(ctx context.Context, year, day int) (string, error)
	Submit(ctx context.Context, year, day, part int, answer string) error
}

// Runner executes registered solutions and tests for one day.
type Runner struct {
	Out      io.Writer
	Log      *logging.Logger
	Service  Service
	Registry *Registry
}

// normalizeParts applies the default part list, drops duplicates keeping the
// first occurrence, and rejects part numbers outside 1 and 2.
func normalizeParts(parts []int) ([]int, error) {
	if len(parts) == 0 {
		return []int{1, 2}, nil
	}
	seen := map[int]bool{}
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		if p != 1 && p != 2 {
			return nil, fmt.Errorf("invalid part %d: must be 1 or 2", p)
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out, nil
}

// Solve runs the requested parts of a day's solution. A missing or failing
// part is reported and counted but does not stop the remaining parts; a
// service failure (input fetch, submission transport) aborts the run. The
// returned error is nil only when every requested part produced an answer.
func (r *Runner) Solve(ctx context.Context, year, day int, parts []int, submit bool) error {
	parts, err := normalizeParts(parts)
	if err != nil {
		return err
	}
	sol, ok := r.Registry.Solution(year, day)
	if !ok {
		return fmt.Errorf("no solution registered for AOC %d-%02d", year, day)
	}

	var input string
	loaded := false
	failed := 0
	for _, part := range parts {
		fn := sol.Part(part)
		if fn == nil {
			r.Log.Warnf("no solution for AOC %d-%02d part %d", year, day, part)
			failed++
			continue
		}
		if !loaded {
			input, err = r.Service.Input(ctx, year, day)
			if err != nil {
				return fmt.Errorf("fetch input: %w", err)
			}
			loaded = true
		}
		answer, err := callPart(fn, input)
		if err != nil {
			r.Log.Warnf("part %d failed: %s", part, err)
			failed++
			continue
		}
		if submit {
			if err := r.Service.Submit(ctx, year, day, part, fmt.Sprint(answer)); err != nil {
				return fmt.Errorf("submit part %d: %w", part, err)
			}
			continue
		}
		_, _ = fmt.Fprintf(r.Out, "Part %d: %v\n", part, answer)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d parts failed", failed, len(parts))
	}
	return nil
}

// Test runs the requested parts' registered test functions. Failures and
// missing tests are reported per part and aggregated the same way Solve
// aggregates; no network access happens here.
func (r *Runner) Test(year, day int, parts []int) error {
	parts, err := normalizeParts(parts)
	if err != nil {
		return err
	}
	tests, ok := r.Registry.Tests(year, day)
	if !ok {
		return fmt.Errorf("no tests registered for AOC %d-%02d", year, day)
	}

	failed := 0
	for _, part := range parts {
		fn := tests.Part(part)
		if fn == nil {
			r.Log.Warnf("no test for AOC %d-%02d part %d", year, day, part)
			failed++
			continue
		}
		if err := callTest(fn); err != nil {
			r.Log.Warnf("part %d test failed: %s", part, err)
			failed++
			continue
		}
		r.Log.Okf("part %d test passed", part)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d part tests failed", failed, len(parts))
	}
	return nil
}

// callPart invokes a part function, converting a panic in user code into an
// error so sibling parts still run.
func callPart(fn PartFunc, input string) (answer any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(input)
}

func callTest(fn TestFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
