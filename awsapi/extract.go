package awsapi

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTagNotFound is returned by ExtractTag when no occurrence of the tag
// exists in the text. Absence is recoverable; a tag opened but never closed
// is not, and produces a distinct error.
var ErrTagNotFound = errors.New("tag not found")

// ExtractTags scans text for non-nested <tag>...</tag> occurrences and
// returns their contents in document order. Scanning is first-match: after a
// closing tag is found, scanning resumes past it, so a same-named tag nested
// inside another is never seen. Callers rely on this restriction for
// single-level fields; it is not a general XML parser.
func ExtractTags(text, tag string) ([]string, error) {
	open := "<" + tag + ">"
	close := "</" + tag + ">"

	var vals []string
	for {
		start := strings.Index(text, open)
		if start < 0 {
			return vals, nil
		}
		start += len(open)

		end := strings.Index(text[start:], close)
		if end < 0 {
			return nil, fmt.Errorf("found <%s> without matching </%s>", tag, tag)
		}

		vals = append(vals, text[start:start+end])
		text = text[start+end+len(close):]
	}
}

// ExtractTag returns the contents of the first <tag>...</tag> occurrence.
// A missing tag yields an error matching ErrTagNotFound.
func ExtractTag(text, tag string) (string, error) {
	vals, err := ExtractTags(text, tag)
	if err != nil {
		return "", err
	}
	if len(vals) == 0 {
		return "", fmt.Errorf("<%s>: %w", tag, ErrTagNotFound)
	}
	return vals[0], nil
}
