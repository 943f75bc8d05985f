package generationservice

import (
	"strings"
	"unicode"
)

// parseTitlePair extracts the English/Arabic title pair from the
// model's structured answer. When the key/value form is absent it
// falls back to a line heuristic: the first latin line is the English
// candidate, the first line containing Arabic script the Arabic one.
func parseTitlePair(text string) (english, arabic string) {
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if v, ok := keyedValue(line, "english"); ok && english == "" {
			english = v
		}
		if v, ok := keyedValue(line, "arabic"); ok && arabic == "" {
			arabic = v
		}
	}
	if english != "" || arabic != "" {
		return english, arabic
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if containsArabic(line) {
			if arabic == "" {
				arabic = line
			}
		} else if english == "" {
			english = line
		}
	}
	return english, arabic
}

func keyedValue(line, key string) (string, bool) {
	i := strings.Index(line, ":")
	if i < 0 {
		return "", false
	}
	if !strings.EqualFold(strings.TrimSpace(line[:i]), key) {
		return "", false
	}
	v := strings.TrimSpace(line[i+1:])
	return v, v != ""
}

func containsArabic(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Arabic, r) {
			return true
		}
	}
	return false
}
