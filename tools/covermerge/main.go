// Command covermerge merges Go coverage profiles, such as the unit and
// integration runs, into one profile on stdout.
//
//	go run ./tools/covermerge unit.out integration.out > coverage.out
//
// Blocks present in several profiles are combined: counts are summed in
// count and atomic mode, and any hit counts as covered in set mode.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s file1.out file2.out [...]\n", os.Args[0])
		os.Exit(1)
	}

	profiles := make([]io.Reader, 0, len(os.Args)-1)
	for _, name := range os.Args[1:] {
		f, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", name, err)
			os.Exit(1)
		}
		defer func() { _ = f.Close() }()
		profiles = append(profiles, f)
	}

	if err := merge(os.Stdout, profiles...); err != nil {
		fmt.Fprintf(os.Stderr, "Error merging profiles: %v\n", err)
		os.Exit(1)
	}
}

// merge reads every profile and writes the combined one to w. All profiles
// must share the same mode.
func merge(w io.Writer, profiles ...io.Reader) error {
	var mode string
	counts := map[string]int64{}

	for i, p := range profiles {
		scanner := bufio.NewScanner(p)
		if !scanner.Scan() {
			return fmt.Errorf("profile %d: missing mode line", i)
		}
		m, ok := strings.CutPrefix(scanner.Text(), "mode: ")
		if !ok {
			return fmt.Errorf("profile %d: malformed mode line %q", i, scanner.Text())
		}
		if mode == "" {
			mode = m
		} else if m != mode {
			return fmt.Errorf("profile %d: mode %q does not match %q", i, m, mode)
		}

		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			sep := strings.LastIndexByte(line, ' ')
			if sep < 0 {
				return fmt.Errorf("profile %d: malformed line %q", i, line)
			}
			n, err := strconv.ParseInt(line[sep+1:], 10, 64)
			if err != nil {
				return fmt.Errorf("profile %d: malformed count in %q: %w", i, line, err)
			}

			block := line[:sep]
			if mode == "set" {
				if n > 0 || counts[block] > 0 {
					counts[block] = 1
				} else {
					counts[block] = 0
				}
				continue
			}
			counts[block] += n
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("profile %d: %w", i, err)
		}
	}

	blocks := make([]string, 0, len(counts))
	for b := range counts {
		blocks = append(blocks, b)
	}
	sort.Strings(blocks)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "mode: %s\n", mode)
	for _, b := range blocks {
		fmt.Fprintf(bw, "%s %d\n", b, counts[b])
	}
	return bw.Flush()
}
