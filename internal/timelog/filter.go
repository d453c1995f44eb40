package timelog

import (
	"fmt"
	"regexp"
	"strings"
)

// Filter reports whether entry text should be kept. A query combines its
// filters with AND; no filters means everything matches.
type Filter func(text string) bool

// ParseFilters builds filters from find and exclude patterns. Each pattern
// is a regular expression unless its first character is '+' or '*', which
// are escaped so todo.txt style project markers match literally. Empty
// patterns contribute nothing.
func ParseFilters(find, exclude string) ([]Filter, error) {
	var filters []Filter

	if exclude != "" {
		f, err := searchFilter(exclude, false)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	if find != "" {
		f, err := searchFilter(find, true)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	return filters, nil
}

// searchFilter compiles pattern and keeps text when a match is found (or
// not found, when keep is false).
func searchFilter(pattern string, keep bool) (Filter, error) {
	if strings.HasPrefix(pattern, "+") || strings.HasPrefix(pattern, "*") {
		pattern = `\` + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad filter pattern %q: %w", pattern, err)
	}
	if keep {
		return func(text string) bool { return re.MatchString(text) }, nil
	}
	return func(text string) bool { return !re.MatchString(text) }, nil
}

func accept(filters []Filter, text string) bool {
	for _, f := range filters {
		if !f(text) {
			return false
		}
	}
	return true
}
