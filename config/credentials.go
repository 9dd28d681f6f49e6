package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Credentials holds the static key pair used to sign every request.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
}

const (
	accessKeyIDField     = "ACCESS_KEY_ID"
	secretAccessKeyField = "ACCESS_KEY_SECRET"
)

// LoadCredentials reads a key file of KEY=value lines. Exactly the two known
// keys must appear, each once; anything else in the file is an error rather
// than something to skip over.
func LoadCredentials(path string) (Credentials, error) {
	f, err := os.Open(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("opening key file: %s", err)
	}
	defer f.Close()

	var creds Credentials
	seen := map[string]bool{}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		name, value, found := strings.Cut(line, "=")
		if !found {
			return Credentials{}, fmt.Errorf("malformed line in key file: %s", line)
		}
		if seen[name] {
			return Credentials{}, fmt.Errorf("duplicate key in key file: %s", name)
		}
		seen[name] = true

		switch name {
		case accessKeyIDField:
			creds.AccessKeyID = value
		case secretAccessKeyField:
			creds.SecretAccessKey = value
		default:
			return Credentials{}, fmt.Errorf("unknown key in key file: %s", name)
		}
	}
	if err := scanner.Err(); err != nil {
		return Credentials{}, fmt.Errorf("reading key file: %s", err)
	}

	if !seen[accessKeyIDField] {
		return Credentials{}, fmt.Errorf("key file is missing %s", accessKeyIDField)
	}
	if !seen[secretAccessKeyField] {
		return Credentials{}, fmt.Errorf("key file is missing %s", secretAccessKeyField)
	}

	return creds, nil
}
