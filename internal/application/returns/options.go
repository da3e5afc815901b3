package returns

import "strings"

// buildSelectOptions splits a comma-delimited setting into dropdown entries.
// The unspecified sentinel comes first; tokens keep source order and are
// not deduplicated.
func buildSelectOptions(raw, current, unspecified string) []SelectOption {
	options := []SelectOption{{Text: unspecified, Value: ""}}
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		options = append(options, SelectOption{
			Text:     token,
			Value:    token,
			Selected: token == current,
		})
	}
	return options
}
