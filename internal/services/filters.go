package services

import "strings"

// matchText reports whether the query is a case-insensitive substring of any
// of the fields. An empty query matches everything. Filters compose with
// logical AND, so applying search before or after an exact-match filter
// yields the same result set.
func matchText(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// passFilter reports whether an exact-match filter is a pass-through.
// The UI sends "all" for the unselected state; an absent parameter behaves
// the same way.
func passFilter(v string) bool {
	return v == "" || v == "all"
}
