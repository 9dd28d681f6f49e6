// Package waiter polls a describe call until a resource reaches a terminal
// state. All three polling variants in the pipeline (conversion task,
// snapshot, image) are instances of the one state machine here, so their
// loop behavior cannot drift apart.
package waiter

import (
	"context"
	"fmt"
	"io"
	"time"

	"ami-builder/awsapi"
)

// DefaultPollInterval is the fixed delay between describe calls. There is no
// backoff and no iteration cap; cancellation comes from the context.
const DefaultPollInterval = 10 * time.Second

// Decision is the outcome of inspecting one describe response. Done carries
// an optional payload (e.g. the created resource's id); a pending decision
// carries the current status text for progress reporting.
type Decision struct {
	Done    bool
	Payload string
	Status  string
}

// CheckFunc classifies a describe response. Returning an error marks the
// resource as having reached a terminal error state and aborts the wait.
type CheckFunc func(body string) (Decision, error)

// DescribeFunc issues one describe call and returns the response body.
type DescribeFunc func() (string, error)

type Waiter struct {
	// Name prefixes progress output, e.g. "Importing volume".
	Name         string
	Describe     DescribeFunc
	Check        CheckFunc
	PollInterval time.Duration
	Progress     io.Writer
}

// Wait blocks until Check reports a terminal state, printing a dot while the
// status is unchanged and a fresh status line when it changes. The context
// is consulted before each describe call and during each sleep.
func (w *Waiter) Wait(ctx context.Context) (string, error) {
	interval := w.PollInterval
	if interval == 0 {
		interval = DefaultPollInterval
	}
	progress := w.Progress
	if progress == nil {
		progress = io.Discard
	}

	var lastStatus string
	seen := false

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("waiting for %s: %s", w.Name, err)
		}

		body, err := w.Describe()
		if err != nil {
			return "", err
		}

		decision, err := w.Check(body)
		if err != nil {
			return "", err
		}
		if decision.Done {
			fmt.Fprintf(progress, " done.\n") //nolint:errcheck
			return decision.Payload, nil
		}

		switch {
		case !seen:
			fmt.Fprintf(progress, "%s: %s", w.Name, decision.Status) //nolint:errcheck
			seen = true
			lastStatus = decision.Status
		case decision.Status != lastStatus:
			fmt.Fprintf(progress, "\n%s: %s", w.Name, decision.Status) //nolint:errcheck
			lastStatus = decision.Status
		default:
			fmt.Fprintf(progress, ".") //nolint:errcheck
		}

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("waiting for %s: %s", w.Name, ctx.Err())
		case <-time.After(interval):
		}
	}
}

// StatusCheck builds a CheckFunc for resources that expose a single status
// tag with one success value and one retry value. Any other status is a
// terminal error.
func StatusCheck(tag, doneStatus, pendingStatus string) CheckFunc {
	return func(body string) (Decision, error) {
		status, err := awsapi.ExtractTag(body, tag)
		if err != nil {
			return Decision{}, fmt.Errorf("could not find <%s> in response: %s", tag, body)
		}

		switch status {
		case doneStatus:
			return Decision{Done: true}, nil
		case pendingStatus:
			return Decision{Status: status}, nil
		default:
			return Decision{}, fmt.Errorf("bad status %q", status)
		}
	}
}
