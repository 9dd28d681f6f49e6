package awsapi

import "fmt"

// MaxAttempts bounds the retry loop around calls that are safe to re-issue.
// Calls that create cloud resources are never routed through the retry
// wrapper: re-issuing them could create duplicates.
const MaxAttempts = 10

func (c *Client) withRetry(name string, op func() (string, error)) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		result, err := op()
		if err == nil {
			return result, nil
		}
		lastErr = err
		c.logger.Printf("%s failed %d time(s): %s", name, attempt, err)
	}
	return "", fmt.Errorf("%s failed after %d attempts: %s", name, MaxAttempts, lastErr)
}
