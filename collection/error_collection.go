package collection

import (
	"fmt"
	"strings"
	"sync"
)

// Error collects failures from concurrent copy goroutines. Safe for
// concurrent use; messages are captured eagerly so the originating errors
// need not outlive their goroutines.
type Error struct {
	sync.Mutex
	errMsgs []string
}

func (e *Error) Add(err error) {
	e.Lock()
	defer e.Unlock()

	e.errMsgs = append(e.errMsgs, err.Error())
}

// Error flattens everything collected into one error, or nil if the fan-out
// finished clean.
func (e *Error) Error() error {
	e.Lock()
	defer e.Unlock()

	if len(e.errMsgs) == 0 {
		return nil
	}

	return fmt.Errorf("encountered errors: \n %s", strings.Join(e.errMsgs, "\n"))
}
