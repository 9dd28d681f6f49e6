package awsapi

import (
	"bytes"
	"fmt"
)

var crlfcrlf = []byte("\r\n\r\n")

// ParseResponse validates a raw HTTP response and returns its body. The
// response must contain no NUL byte (a truncated or binary response), must
// carry a 200 status on its first line, and must separate headers from body
// with a blank line. Failures carry the full raw response for diagnostics.
func ParseResponse(raw []byte) ([]byte, error) {
	if bytes.IndexByte(raw, 0) >= 0 {
		return nil, fmt.Errorf("NUL byte in API response")
	}

	firstLine := raw
	if eol := bytes.IndexAny(raw, "\r\n"); eol >= 0 {
		firstLine = raw[:eol]
	}
	if !bytes.Contains(firstLine, []byte(" 200 ")) {
		return nil, fmt.Errorf("API request failed:\n%s", raw)
	}

	sep := bytes.Index(raw, crlfcrlf)
	if sep < 0 {
		return nil, fmt.Errorf("bad API response received:\n%s", raw)
	}

	return raw[sep+len(crlfcrlf):], nil
}
