package waiter_test

import (
	"context"
	"errors"
	"time"

	"ami-builder/waiter"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
)

var _ = Describe("Waiter", func() {
	It("polls until the check reports completion and returns the payload", func() {
		responses := []string{
			"<status>pending</status>",
			"<status>pending</status>",
			"<status>completed</status>",
		}
		describes := 0

		w := waiter.Waiter{
			Name: "Creating thing",
			Describe: func() (string, error) {
				body := responses[describes]
				describes++
				return body, nil
			},
			Check: func(body string) (waiter.Decision, error) {
				if body == "<status>completed</status>" {
					return waiter.Decision{Done: true, Payload: "thing-1"}, nil
				}
				return waiter.Decision{Status: "pending"}, nil
			},
			PollInterval: time.Millisecond,
		}

		payload, err := w.Wait(context.Background())
		Expect(err).ToNot(HaveOccurred())
		Expect(payload).To(Equal("thing-1"))
		Expect(describes).To(Equal(3))
	})

	It("aborts when the check reports a terminal error", func() {
		describes := 0

		w := waiter.Waiter{
			Name: "Creating thing",
			Describe: func() (string, error) {
				describes++
				if describes == 1 {
					return "pending", nil
				}
				return "error", nil
			},
			Check: func(body string) (waiter.Decision, error) {
				if body == "error" {
					return waiter.Decision{}, errors.New("bad status \"error\"")
				}
				return waiter.Decision{Status: body}, nil
			},
			PollInterval: time.Millisecond,
		}

		_, err := w.Wait(context.Background())
		Expect(err).To(MatchError(ContainSubstring("bad status")))
		Expect(describes).To(Equal(2))
	})

	It("returns a describe error unchanged", func() {
		w := waiter.Waiter{
			Name: "Creating thing",
			Describe: func() (string, error) {
				return "", errors.New("describe failed after 10 attempts")
			},
			Check: func(string) (waiter.Decision, error) {
				Fail("check should not run when describe fails")
				return waiter.Decision{}, nil
			},
			PollInterval: time.Millisecond,
		}

		_, err := w.Wait(context.Background())
		Expect(err).To(MatchError(ContainSubstring("describe failed")))
	})

	It("stops waiting when the context is canceled", func() {
		ctx, cancel := context.WithCancel(context.Background())

		w := waiter.Waiter{
			Name: "Creating thing",
			Describe: func() (string, error) {
				cancel()
				return "pending", nil
			},
			Check: func(body string) (waiter.Decision, error) {
				return waiter.Decision{Status: body}, nil
			},
			PollInterval: time.Hour,
		}

		_, err := w.Wait(ctx)
		Expect(err).To(MatchError(ContainSubstring("Creating thing")))
		Expect(err).To(MatchError(ContainSubstring("context canceled")))
	})

	It("prints dots while the status is unchanged and a new line when it changes", func() {
		progress := gbytes.NewBuffer()
		responses := []string{"a", "a", "b", "done"}
		describes := 0

		w := waiter.Waiter{
			Name: "Importing volume",
			Describe: func() (string, error) {
				body := responses[describes]
				describes++
				return body, nil
			},
			Check: func(body string) (waiter.Decision, error) {
				if body == "done" {
					return waiter.Decision{Done: true}, nil
				}
				return waiter.Decision{Status: body}, nil
			},
			PollInterval: time.Millisecond,
			Progress:     progress,
		}

		_, err := w.Wait(context.Background())
		Expect(err).ToNot(HaveOccurred())
		Expect(string(progress.Contents())).To(Equal("Importing volume: a.\nImporting volume: b done.\n"))
	})
})

var _ = Describe("StatusCheck", func() {
	check := waiter.StatusCheck("status", "completed", "pending")

	It("reports done for the success status", func() {
		decision, err := check("<status>completed</status>")
		Expect(err).ToNot(HaveOccurred())
		Expect(decision.Done).To(BeTrue())
	})

	It("reports pending for the retry status", func() {
		decision, err := check("<status>pending</status>")
		Expect(err).ToNot(HaveOccurred())
		Expect(decision.Done).To(BeFalse())
		Expect(decision.Status).To(Equal("pending"))
	})

	It("treats any other status as terminal", func() {
		_, err := check("<status>error</status>")
		Expect(err).To(MatchError(`bad status "error"`))
	})

	It("errors when the status tag is missing", func() {
		_, err := check("<other/>")
		Expect(err).To(MatchError(ContainSubstring("could not find <status>")))
	})
})
