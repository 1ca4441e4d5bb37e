package config

import "strings"

// Section headers that must appear in every rendered file. The encoder drops
// nil sections and has no placeholder control, so they are patched in here.
const grpcHeader = "[server.grpc]"

var (
	// serverHeaders precede the grpc header, in order.
	serverHeaders = []string{"[server]", "[server.http]"}
	// placeholderHeaders close out the file as editable stubs.
	placeholderHeaders = []string{"[logging]", "[recognizer]", "[storage]"}
)

// correctLayout inserts missing server headers ahead of the grpc header and
// appends empty placeholder sections. Headers already present are never repeated.
func correctLayout(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	present := make(map[string]bool)
	for _, line := range lines {
		if h, ok := sectionHeader(line); ok {
			present[h] = true
		}
	}

	out := make([]string, 0, len(lines)+2*len(placeholderHeaders)+len(serverHeaders))
	for _, line := range lines {
		if h, ok := sectionHeader(line); ok && h == grpcHeader {
			for _, sh := range serverHeaders {
				if !present[sh] {
					out = append(out, sh)
				}
			}
		}
		out = append(out, line)
	}

	for _, ph := range placeholderHeaders {
		if !present[ph] {
			out = append(out, "", ph)
		}
	}

	return strings.TrimLeft(strings.Join(out, "\n"), "\n") + "\n"
}

// sectionHeader reports whether line is a [table] header (not [[array]]).
func sectionHeader(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "[[") || !strings.HasSuffix(trimmed, "]") {
		return "", false
	}
	return trimmed, true
}
