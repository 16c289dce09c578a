package tui

import "github.com/APConduct/tree-sitter-luma/internal/domain"

type filesLoadedMsg struct {
	root  string
	paths []string
	err   error
}

type parseDoneMsg struct {
	path   string
	report domain.ParseReport
	err    error
}
