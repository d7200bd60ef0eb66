package solve

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"aockit/internal/logging"
)

type submission struct {
	year, day, part int
	answer          string
}

type fakeService struct {
	input      string
	inputErr   error
	inputCalls int
	submitted  []submission
	submitErr  error
}

func (f *fakeService) Input(ctx context.Context, year, day int) (string, error) {
	f.inputCalls++
	return f.input, f.inputErr
}

func (f *fakeService) Submit(ctx context.Context, year, day, part int, answer string) error {
	if f.submitErr != nil {
		return f.submitErr
	}
	f.submitted = append(f.submitted, submission{year, day, part, answer})
	return nil
}

func newTestRunner(r *Registry, svc Service) (*Runner, *bytes.Buffer) {
	var out bytes.Buffer
	return &Runner{
		Out:      &out,
		Log:      logging.NewWriter(io.Discard),
		Service:  svc,
		Registry: r,
	}, &out
}

func TestSolveBothParts(t *testing.T) {
	r := NewRegistry()
	r.Register(Solution{
		Year:  2023,
		Day:   1,
		Part1: func(input string) (any, error) { return len(input), nil },
		Part2: func(input string) (any, error) { return input + "!", nil },
	})
	svc := &fakeService{input: "abc"}
	runner, out := newTestRunner(r, svc)

	err := runner.Solve(context.Background(), 2023, 1, nil, false)
	require.NoError(t, err)
	require.Equal(t, "Part 1: 3\nPart 2: abc!\n", out.String())
	require.Equal(t, 1, svc.inputCalls, "input is fetched once for both parts")
	require.Empty(t, svc.submitted)
}

func TestSolveMissingPartDoesNotAbortSibling(t *testing.T) {
	r := NewRegistry()
	r.Register(Solution{
		Year:  2023,
		Day:   2,
		Part1: func(input string) (any, error) { return "one", nil },
	})
	runner, out := newTestRunner(r, &fakeService{input: "x"})

	err := runner.Solve(context.Background(), 2023, 2, []int{1, 2}, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "1 of 2 parts failed")
	require.Equal(t, "Part 1: one\n", out.String())
}

func TestSolvePartOrderAndDedup(t *testing.T) {
	r := NewRegistry()
	r.Register(Solution{
		Year:  2023,
		Day:   3,
		Part1: func(input string) (any, error) { return 1, nil },
		Part2: func(input string) (any, error) { return 2, nil },
	})
	runner, out := newTestRunner(r, &fakeService{})

	err := runner.Solve(context.Background(), 2023, 3, []int{2, 1, 2}, false)
	require.NoError(t, err)
	require.Equal(t, "Part 2: 2\nPart 1: 1\n", out.String())
}

func TestSolveRejectsInvalidPart(t *testing.T) {
	r := NewRegistry()
	r.Register(Solution{Year: 2023, Day: 4})
	runner, _ := newTestRunner(r, &fakeService{})

	err := runner.Solve(context.Background(), 2023, 4, []int{3}, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid part 3")
}

func TestSolveUnregisteredDay(t *testing.T) {
	runner, _ := newTestRunner(NewRegistry(), &fakeService{})

	err := runner.Solve(context.Background(), 2023, 5, nil, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no solution registered for AOC 2023-05")
}

func TestSolveInputFetchErrorIsFatal(t *testing.T) {
	r := NewRegistry()
	r.Register(Solution{
		Year:  2023,
		Day:   6,
		Part1: func(input string) (any, error) { return 1, nil },
	})
	svc := &fakeService{inputErr: errors.New("boom")}
	runner, out := newTestRunner(r, svc)

	err := runner.Solve(context.Background(), 2023, 6, []int{1}, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "fetch input")
	require.Empty(t, out.String())
}

func TestSolveFailingPartIsNotSubmitted(t *testing.T) {
	r := NewRegistry()
	r.Register(Solution{
		Year:  2023,
		Day:   7,
		Part1: func(input string) (any, error) { return nil, errors.New("bad parse") },
		Part2: func(input string) (any, error) { return 99, nil },
	})
	svc := &fakeService{input: "x"}
	runner, _ := newTestRunner(r, svc)

	err := runner.Solve(context.Background(), 2023, 7, []int{1, 2}, true)
	require.Error(t, err)
	require.Equal(t, []submission{{2023, 7, 2, "99"}}, svc.submitted)
}

func TestSolveRecoversPanicInPart(t *testing.T) {
	r := NewRegistry()
	r.Register(Solution{
		Year:  2023,
		Day:   8,
		Part1: func(input string) (any, error) { panic("index out of range") },
		Part2: func(input string) (any, error) { return "ok", nil },
	})
	runner, out := newTestRunner(r, &fakeService{})

	err := runner.Solve(context.Background(), 2023, 8, nil, false)
	require.Error(t, err)
	require.Equal(t, "Part 2: ok\n", out.String())
}

func TestSolveSubmitErrorIsFatal(t *testing.T) {
	r := NewRegistry()
	r.Register(Solution{
		Year:  2023,
		Day:   9,
		Part1: func(input string) (any, error) { return 1, nil },
		Part2: func(input string) (any, error) { return 2, nil },
	})
	svc := &fakeService{submitErr: errors.New("service down")}
	runner, _ := newTestRunner(r, svc)

	err := runner.Solve(context.Background(), 2023, 9, nil, true)
	require.Error(t, err)
	require.Contains(t, err.Error(), "submit part 1")
}

func TestTestMode(t *testing.T) {
	r := NewRegistry()
	r.RegisterTests(Tests{
		Year:  2023,
		Day:   10,
		Part1: func() error { return nil },
		Part2: func() error { return errors.New("got 1, want 2") },
	})
	runner, _ := newTestRunner(r, nil)

	require.NoError(t, runner.Test(2023, 10, []int{1}))

	err := runner.Test(2023, 10, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "1 of 2 part tests failed")
}

func TestTestModeMissingAndPanicking(t *testing.T) {
	r := NewRegistry()
	r.RegisterTests(Tests{
		Year:  2023,
		Day:   11,
		Part1: func() error { panic("nil map") },
	})
	runner, _ := newTestRunner(r, nil)

	err := runner.Test(2023, 11, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "2 of 2 part tests failed")
}

func TestTestModeUnregisteredDay(t *testing.T) {
	runner, _ := newTestRunner(NewRegistry(), nil)

	err := runner.Test(2023, 12, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no tests registered for AOC 2023-12")
}
