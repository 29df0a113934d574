package meeting

import (
	"encoding/json"
	"strings"
)

// ExtractJSONObject locates a JSON object inside free-form model output.
// It strips markdown code fences, tries a direct parse, then falls back to
// a bracket-balanced scan for the first {...} span. Returns false when no
// parseable object is present; never panics.
func ExtractJSONObject(raw string) (string, bool) {
	content := stripCodeFences(raw)

	if strings.HasPrefix(content, "{") && json.Valid([]byte(content)) {
		return content, true
	}

	start := strings.Index(content, "{")
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(content); i++ {
		c := content[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				candidate := content[start : i+1]
				if json.Valid([]byte(candidate)) {
					return candidate, true
				}
				return "", false
			}
		}
	}
	return "", false
}

// stripCodeFences removes leading/trailing ``` wrappers that models wrap
// around JSON payloads.
func stripCodeFences(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
