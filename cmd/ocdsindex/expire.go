package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/open-contracting/ocdsindex"
)

// Run executes the expire command.
func (c *ExpireCmd) Run(deps *Dependencies) error {
	var exclude []string
	if c.ExcludeFile != "" {
		var err error
		if exclude, err = readLines(c.ExcludeFile); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", ocdsindex.ErrorMessage(err))
			return err
		}
	}

	before := deps.Now().Add(-ocdsindex.RetentionPeriod)

	n, err := deps.Index.Expire(deps.Ctx, before, exclude)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ocdsindex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Expired %d documents created before %s\n", n, before.UTC().Format("2006-01-02"))
	return nil
}

// readLines returns the non-blank lines of a file, trimmed.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
