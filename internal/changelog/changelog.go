// Package changelog parses the release notes embedded in the binary.
package changelog

import (
	_ "embed"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

//go:embed CHANGELOG.md
var Content string

// Entry is one released version and its changes
type Entry struct {
	Version string
	Date    string
	Changes []string
}

// versionRegex matches version headers like "## v0.2.0 (2026-07-30)" or "## v0.2.0"
var versionRegex = regexp.MustCompile(`^##\s+v?(\d+\.\d+\.\d+)(?:\s+\(([^)]+)\))?`)

// Parse extracts entries from markdown content, in file order
func Parse(content string) []Entry {
	var entries []Entry
	var current *Entry

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		if matches := versionRegex.FindStringSubmatch(line); matches != nil {
			if current != nil {
				entries = append(entries, *current)
			}
			current = &Entry{
				Version: matches[1],
				Date:    matches[2],
				Changes: []string{},
			}
			continue
		}

		if current != nil && strings.HasPrefix(line, "- ") {
			current.Changes = append(current.Changes, strings.TrimPrefix(line, "- "))
		}
	}

	if current != nil {
		entries = append(entries, *current)
	}
	return entries
}

// Entries returns the embedded release notes, newest first
func Entries() []Entry {
	return Parse(Content)
}

// Since returns the entries newer than version. An empty version keeps all.
func Since(version string, entries []Entry) []Entry {
	if version == "" {
		return entries
	}

	var result []Entry
	for _, entry := range entries {
		if CompareVersions(entry.Version, version) > 0 {
			result = append(result, entry)
		}
	}
	return result
}

// CompareVersions compares two semantic versions.
// Returns -1 if a < b, 0 if a == b, 1 if a > b.
func CompareVersions(a, b string) int {
	aParts := parseVersion(a)
	bParts := parseVersion(b)

	for i := range 3 {
		if aParts[i] < bParts[i] {
			return -1
		}
		if aParts[i] > bParts[i] {
			return 1
		}
	}
	return 0
}

// parseVersion extracts [major, minor, patch]. Pre-release and build
// suffixes are ignored, so "v1.2.3-rc.1" compares equal to "1.2.3".
func parseVersion(v string) [3]int {
	v = strings.TrimPrefix(v, "v")
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		v = v[:i]
	}

	parts := strings.Split(v, ".")
	var result [3]int
	for i := 0; i < 3 && i < len(parts); i++ {
		result[i], _ = strconv.Atoi(parts[i])
	}
	return result
}

// Markdown formats entries back into a markdown document
func Markdown(entries []Entry) string {
	var sb strings.Builder
	for i, e := range entries {
		if i > 0 {
			sb.WriteString("\n")
		}
		if e.Date != "" {
			fmt.Fprintf(&sb, "## v%s (%s)\n\n", e.Version, e.Date)
		} else {
			fmt.Fprintf(&sb, "## v%s\n\n", e.Version)
		}
		for _, c := range e.Changes {
			fmt.Fprintf(&sb, "- %s\n", c)
		}
	}
	return sb.String()
}
