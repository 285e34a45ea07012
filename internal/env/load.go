package env

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Load reads KEY=VALUE lines from path (a .env file) into the process environment and returns
// how many variables it set. Variables already present in the environment win over the file.
// Blank lines, # comments and an optional "export " prefix are allowed; values may be quoted.
// A missing file is not an error.
func Load(path string) (int, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("env: %w", err)
	}
	defer f.Close()

	set := 0
	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		key, value, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return set, fmt.Errorf("env: %s:%d: %w", path, n, err)
		}
		set++
	}
	if err := scanner.Err(); err != nil {
		return set, fmt.Errorf("env: %w", err)
	}
	return set, nil
}

func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimPrefix(line, "export ")
	key, value, found := strings.Cut(line, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return "", "", false
	}
	value = strings.TrimSpace(value)
	if len(value) >= 2 {
		if q := value[0]; (q == '"' || q == '\'') && value[len(value)-1] == q {
			value = value[1 : len(value)-1]
		}
	}
	return key, value, true
}
