// Package model holds the pure mark-list transformations shared by the
// commands.
package model

import "strings"

// RemoveAllChoice is the synthetic unmark entry that clears every mark.
const RemoveAllChoice = "(Remove All)"

// FilterByPrefix returns the marks starting with prefix, with the prefix
// removed, in their original order. An empty prefix returns marks as-is.
func FilterByPrefix(marks []string, prefix string) []string {
	if prefix == "" {
		return marks
	}
	result := make([]string, 0, len(marks))
	for _, m := range marks {
		if rest, ok := strings.CutPrefix(m, prefix); ok {
			result = append(result, rest)
		}
	}
	return result
}

// ApplyPrefix prepends prefix to name.
func ApplyPrefix(prefix, name string) string {
	return prefix + name
}

// UnmarkChoices returns the choice list and parallel values offered by the
// unmark prompt: RemoveAllChoice mapped to the empty mark, then each mark
// mapped to itself.
func UnmarkChoices(marks []string) (choices, values []string) {
	choices = make([]string, 0, len(marks)+1)
	values = make([]string, 0, len(marks)+1)
	choices = append(choices, RemoveAllChoice)
	values = append(values, "")
	choices = append(choices, marks...)
	values = append(values, marks...)
	return choices, values
}
