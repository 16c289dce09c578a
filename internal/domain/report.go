package domain

import "time"

// ParseReport is the persistable artifact of parsing one file.
type ParseReport struct {
	File        string    `json:"file"`
	RootKind    string    `json:"root_kind"`
	SourceBytes int       `json:"source_bytes"`
	NodeCount   int       `json:"node_count"`
	ErrorCount  int       `json:"error_count"`
	DurationMS  int64     `json:"duration_ms"`
	ParsedAt    time.Time `json:"parsed_at"`
	Root        Node      `json:"root"`
}

// NewParseReport fills the derived counters from the mapped tree.
func NewParseReport(file string, sourceBytes int, root Node) ParseReport {
	return ParseReport{
		File:        file,
		RootKind:    root.Kind,
		SourceBytes: sourceBytes,
		NodeCount:   Count(root),
		ErrorCount:  ErrorCount(root),
		Root:        root,
	}
}

// ExtractResult reports the outcome of one JSONPath extraction rule applied
// to a tree's JSON encoding.
type ExtractResult struct {
	Name    string `json:"name"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// QueryMatch is one capture produced by running a tree-sitter query over a
// parsed source.
type QueryMatch struct {
	Capture string `json:"capture"`
	Kind    string `json:"kind"`
	Range   Range  `json:"range"`
	Text    string `json:"text"`
}
