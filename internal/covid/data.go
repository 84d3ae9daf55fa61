package covid

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// Data is a region name to case count lookup loaded from an external
// markdown-style table. It feeds the dashboard only and has no effect on
// risk scoring.
type Data map[string]int

// Load parses the case-count table at path. The file is a pipe-delimited
// table with two header lines; blank lines and separator rows are skipped,
// and counts may contain thousands separators. A missing or malformed file
// yields an empty dataset rather than an error that would break the
// dashboard.
func Load(path string) Data {
	data := make(Data)

	f, err := os.Open(path)
	if err != nil {
		return data
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo <= 2 {
			continue
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.Contains(line, "---") {
			continue
		}

		var parts []string
		for _, p := range strings.Split(line, "|") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) < 2 {
			continue
		}

		cases, err := parseCount(parts[1])
		if err != nil {
			continue
		}
		data[parts[0]] = cases
	}

	return data
}

func parseCount(s string) (int, error) {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	return strconv.Atoi(s)
}

// Lookup finds the case count for a region, trying an exact match first and
// falling back to a case-insensitive comparison.
func (d Data) Lookup(region string) (int, bool) {
	region = strings.TrimSpace(region)
	if region == "" {
		return 0, false
	}
	if cases, ok := d[region]; ok {
		return cases, true
	}
	for name, cases := range d {
		if strings.EqualFold(name, region) {
			return cases, true
		}
	}
	return 0, false
}
