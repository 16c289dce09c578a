package domain

// GrammarName is the name the generated artifacts must declare.
const GrammarName = "luma"

// NodeKindInfo is one entry of the generated node-types.json: a node kind
// the grammar can produce and whether it is a named rule.
type NodeKindInfo struct {
	Type  string `json:"type"`
	Named bool   `json:"named"`
}

// VerificationIssue is one finding from checking the generated grammar
// artifacts on disk.
type VerificationIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}
