package models

import (
	"regexp"
	"strings"

	srvErrors "github.com/avatar-tools/logscan/pkg/errors"
)

// Search matches chat log lines either by plain substring or by regexp.
type Search struct {
	term string
	re   *regexp.Regexp
}

func NewSearch(term string, isRegex bool) (Search, error) {
	if term == "" {
		return Search{}, srvErrors.NewInvalidArgumentError("search term is empty")
	}
	if !isRegex {
		return Search{term: term}, nil
	}
	re, err := regexp.Compile(term)
	if err != nil {
		return Search{}, srvErrors.NewInvalidArgumentError("invalid regular expression %q: %v", term, err)
	}
	return Search{term: term, re: re}, nil
}

func (s Search) Match(line string) bool {
	if s.re != nil {
		return s.re.MatchString(line)
	}
	return strings.Contains(line, s.term)
}

func (s Search) IsRegex() bool { return s.re != nil }

func (s Search) String() string { return s.term }

// Highlight returns line with every match replaced by mark(match).
func (s Search) Highlight(line string, mark func(string) string) string {
	if s.re != nil {
		return s.re.ReplaceAllStringFunc(line, mark)
	}
	if s.term == "" {
		return line
	}
	return strings.ReplaceAll(line, s.term, mark(s.term))
}
