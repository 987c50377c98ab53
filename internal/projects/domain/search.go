package domain

import "strings"

// Filter keeps projects whose name, searchable form fields or kind label
// contain query, case-insensitively. A blank query returns projects as-is.
func Filter(projects []Project, query string) []Project {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return projects
	}

	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if matches(p, term) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p Project, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	if p.Input != nil {
		for _, f := range p.Input.SearchFields() {
			if f != "" && strings.Contains(strings.ToLower(f), term) {
				return true
			}
		}
	}
	return strings.Contains(strings.ToLower(p.Kind().Label()), term)
}
