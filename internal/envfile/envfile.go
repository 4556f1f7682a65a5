// Package envfile reads and rewrites the content of .env files.
//
// Content is handled as text so that comments, ordering and unrelated lines
// survive a merge untouched. Only keys set by the applied groups and the
// category blocks those groups own are rewritten.
package envfile

import (
	"strings"

	"github.com/PolarWolf314/envtray/internal/model"
)

// Parse extracts KEY=VALUE pairs, skipping blank lines and # comments. The
// value is everything after the first '='.
func Parse(content string) []model.EnvVariable {
	var vars []model.EnvVariable
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, _ := strings.Cut(trimmed, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		vars = append(vars, model.EnvVariable{Key: key, Value: strings.TrimSpace(value)})
	}
	return vars
}

// Render returns the group's variables as env lines.
func Render(group model.EnvGroup) string {
	var b strings.Builder
	for _, v := range group.Variables {
		key := strings.TrimSpace(v.Key)
		if key == "" {
			continue
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(v.Value)
		b.WriteByte('\n')
	}
	return b.String()
}

// Merge applies groups to existing env content.
//
// A comment line mentioning a group's category is replaced by the block
// "# <category>: <group>" followed by the variables of every group in that
// category; the original lines up to the next comment or blank line are
// dropped. Any other KEY=VALUE line whose key is set by a group gets the new
// value. Categories that never appeared are appended as new blocks, and
// uncategorised variables missing from the file are appended last. The
// result ends with exactly one newline.
func Merge(content string, groups []model.EnvGroup) string {
	updates := make(map[string]string)
	for _, g := range groups {
		for _, v := range g.Variables {
			if key := strings.TrimSpace(v.Key); key != "" {
				updates[key] = v.Value
			}
		}
	}

	var lines []string
	if strings.TrimSpace(content) != "" {
		lines = strings.Split(content, "\n")
	}
	result := make([]string, 0, len(lines))
	written := make(map[string]bool)
	doneCategories := make(map[string]bool)

	for i := 0; i < len(lines); {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "#") {
			comment := strings.TrimSpace(trimmed[1:])
			if g, ok := categoryOwner(groups, comment); ok && !doneCategories[g.Category] {
				doneCategories[g.Category] = true
				result = append(result, "# "+g.Category+": "+g.Name)
				result = appendCategory(result, groups, g.Category, written)

				i++
				for i < len(lines) {
					next := strings.TrimSpace(lines[i])
					if next == "" || strings.HasPrefix(next, "#") {
						break
					}
					i++
				}
				continue
			}
		}

		if trimmed != "" && !strings.HasPrefix(trimmed, "#") && strings.Contains(trimmed, "=") {
			key, _, _ := strings.Cut(trimmed, "=")
			key = strings.TrimSpace(key)
			if value, ok := updates[key]; ok && key != "" {
				result = append(result, key+"="+value)
				written[key] = true
				i++
				continue
			}
		}

		result = append(result, line)
		i++
	}

	for _, g := range groups {
		if g.Category == "" || doneCategories[g.Category] {
			continue
		}
		doneCategories[g.Category] = true
		if len(result) > 0 && strings.TrimSpace(result[len(result)-1]) != "" {
			result = append(result, "")
		}
		result = append(result, "# "+g.Category)
		result = appendCategory(result, groups, g.Category, written)
	}

	var missing []string
	for _, g := range groups {
		if g.Category != "" {
			continue
		}
		for _, v := range g.Variables {
			key := strings.TrimSpace(v.Key)
			if key == "" || written[key] {
				continue
			}
			written[key] = true
			missing = append(missing, key+"="+updates[key])
		}
	}
	if len(missing) > 0 {
		result = append(trimTrailingBlank(result), missing...)
	}

	return strings.TrimRight(strings.Join(result, "\n"), " \t\r\n") + "\n"
}

func trimTrailingBlank(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func categoryOwner(groups []model.EnvGroup, comment string) (model.EnvGroup, bool) {
	for _, g := range groups {
		if g.Category != "" && strings.Contains(comment, g.Category) {
			return g, true
		}
	}
	return model.EnvGroup{}, false
}

func appendCategory(result []string, groups []model.EnvGroup, category string, written map[string]bool) []string {
	for _, g := range groups {
		if g.Category != category {
			continue
		}
		for _, v := range g.Variables {
			key := strings.TrimSpace(v.Key)
			if key == "" {
				continue
			}
			result = append(result, key+"="+v.Value)
			written[key] = true
		}
	}
	return result
}
