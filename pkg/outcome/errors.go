package outcome

import (
	"errors"
	"fmt"
)

// ErrNoFailures is the panic value (wrapped) of Fail and FailOf when they are
// called without any failure. A failed result always carries at least one.
var ErrNoFailures = errors.New("outcome: fail requires at least one failure")

func mustHaveFailures(op string, failures []Failure) {
	if len(failures) == 0 {
		panic(fmt.Errorf("%s: %w", op, ErrNoFailures))
	}
}
