// Package batch reads glosses for headless deck generation from a file.
package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadGlossesFile reads glosses from a file, one per line.
// Blank lines and lines starting with '#' are skipped. Commas inside a line
// are kept, so "to eat, to drink" stays a single entry for the adapter to
// split.
func ReadGlossesFile(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	defer f.Close()

	glosses, err := ReadGlosses(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file %s: %w", filename, err)
	}
	return glosses, nil
}

// ReadGlosses reads glosses from r using the same rules as ReadGlossesFile
func ReadGlosses(r io.Reader) ([]string, error) {
	var glosses []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		glosses = append(glosses, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return glosses, nil
}

// Join turns glosses into the free-text form the adapter expects
func Join(glosses []string) string {
	return strings.Join(glosses, "\n")
}
