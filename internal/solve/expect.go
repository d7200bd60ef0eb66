package solve

import (
	"errors"
	"fmt"
)

// Expect runs a part function on the sample input and compares the answer
// against want by string form. A nil want means the expected answer has not
// been filled in yet, which is itself a test failure so freshly scaffolded
// days fail loudly instead of passing vacuously.
func Expect(fn PartFunc, input string, want any) error {
	if fn == nil {
		return errors.New("part function is nil")
	}
	got, err := fn(input)
	if err != nil {
		return err
	}
	if want == nil {
		return fmt.Errorf("expected answer not set (got %v)", got)
	}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		return fmt.Errorf("got %v, want %v", got, want)
	}
	return nil
}
