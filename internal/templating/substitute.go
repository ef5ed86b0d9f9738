package templating

import "regexp"

var placeholder = regexp.MustCompile(`\$(?:(\$)|([_a-zA-Z][_a-zA-Z0-9]*)|\{([_a-zA-Z][_a-zA-Z0-9]*)\})`)

// Substitute replaces $name and ${name} placeholders in text with entries of
// values. Names missing from values, and "$" signs that start no
// placeholder, are kept verbatim. "$$" becomes "$".
func Substitute(text string, values map[string]string) string {
	return placeholder.ReplaceAllStringFunc(text, func(match string) string {
		groups := placeholder.FindStringSubmatch(match)
		if groups[1] != "" {
			return "$"
		}

		name := groups[2]
		if name == "" {
			name = groups[3]
		}
		if v, ok := values[name]; ok {
			return v
		}
		return match
	})
}
