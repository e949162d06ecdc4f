// Package normalize recovers a JSON object from loosely formatted model output.
package normalize

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Stage identifies which recovery attempt produced the result.
type Stage string

const (
	StageDirect Stage = "direct"
	StageFenced Stage = "fenced"
	StageBraces Stage = "braces"
	StageMiss   Stage = "miss"
)

const fence = "```"

var leadingFence = regexp.MustCompile("^```[a-zA-Z0-9_-]*\\s*")

// Normalize tries, in order: a direct parse of the trimmed reply, a parse after
// stripping a markdown code fence, and a parse of the span between the first
// '{' and the last '}'. It returns nil and StageMiss when all three fail.
//
// Only JSON objects count as a result; arrays, scalars and null do not.
func Normalize(raw string) (map[string]any, Stage) {
	trimmed := strings.TrimSpace(raw)

	if m, ok := parseObject(trimmed); ok {
		return m, StageDirect
	}

	if strings.Contains(trimmed, fence) {
		if m, ok := parseObject(stripFence(trimmed)); ok {
			return m, StageFenced
		}
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end != -1 && end > start {
		if m, ok := parseObject(raw[start : end+1]); ok {
			return m, StageBraces
		}
	}

	return nil, StageMiss
}

func stripFence(s string) string {
	if strings.HasPrefix(s, fence) {
		s = leadingFence.ReplaceAllString(s, "")
	}
	if strings.HasSuffix(s, fence) {
		s = strings.TrimSpace(s[:len(s)-len(fence)])
	}
	return s
}

func parseObject(s string) (map[string]any, bool) {
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil, false
	}
	// "null" decodes without error into a nil map.
	if m == nil {
		return nil, false
	}
	return m, true
}
