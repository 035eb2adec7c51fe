/*

This file contains the JSON extraction scanner for model output. Models are
instructed to return a raw JSON object but routinely wrap it in markdown
fences or prose; extraction peels those layers off without allocating more
than the final slice.

*/

package advisor

import (
	"regexp"
	"strings"
)

var greedyObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractJSON returns the first complete JSON object embedded in free-form
// model output, or "" when none can be located. Markdown code fences are
// stripped first; then a brace-depth scan finds the matching close brace;
// a greedy regex capture is the last resort for unbalanced text.
func ExtractJSON(text string) string {
	text = stripCodeFences(text)

	if object := scanBalancedObject(text); object != "" {
		return object
	}
	return greedyObjectPattern.FindString(text)
}

// stripCodeFences unwraps ```json ... ``` (or plain ```) fencing.
func stripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	start := strings.Index(trimmed, "```")
	if start == -1 {
		return trimmed
	}

	rest := trimmed[start+3:]
	if newline := strings.IndexByte(rest, '\n'); newline != -1 {
		// Drop the language tag line ("json", "JSON", ...).
		firstLine := strings.TrimSpace(rest[:newline])
		if !strings.ContainsAny(firstLine, "{}") {
			rest = rest[newline+1:]
		}
	}
	if end := strings.Index(rest, "```"); end != -1 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}

// scanBalancedObject walks the text from the first '{' tracking brace depth,
// honoring string literals and escape sequences.
func scanBalancedObject(text string) string {
	start := strings.IndexByte(text, '{')
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		ch := text[i]

		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch ch {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}

	return ""
}
