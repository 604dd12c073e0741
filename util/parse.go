package util

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// ReadFileString reads a file and returns its contents as a string.
func ReadFileString(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadFileLines reads a file and returns its lines.
func ReadFileLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// ParseKeyValueFile parses a file with "key: value" lines (e.g.
// /proc/meminfo, /proc/self/status).
func ParseKeyValueFile(path string) (map[string]string, error) {
	lines, err := ReadFileLines(path)
	if err != nil {
		return nil, err
	}
	m := make(map[string]string, len(lines))
	for _, line := range lines {
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		if key != "" {
			m[key] = strings.TrimSpace(line[idx+1:])
		}
	}
	return m, nil
}

// ParseUint64 parses a string to uint64, returning 0 on error.
func ParseUint64(s string) uint64 {
	v, _ := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	return v
}

// ParseKB parses a value like "1234 kB" and returns bytes.
func ParseKB(s string) uint64 {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, " kB")
	s = strings.TrimSuffix(s, "kB")
	return ParseUint64(s) * 1024
}
