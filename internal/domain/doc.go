// Package domain contains the core domain model for the luma tool.
//
// The domain is runtime- and persistence-agnostic: it does not depend on the
// tree-sitter bindings, JSON parsing of generated artifacts, or the
// filesystem. Infra/adapters map into/from these types.
package domain
