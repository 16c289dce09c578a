// Package tree_sitter_luma exposes the compiled Luma grammar to Go programs.
//
// The grammar tables under src/ are generated by `tree-sitter generate`;
// this package only hands the native language pointer to a tree-sitter
// runtime binding.
package tree_sitter_luma

// #cgo CFLAGS: -I../../src -std=c11 -fPIC
// #include "../../src/parser.c"
import "C"

import "unsafe"

// Language returns the native handle for the Luma grammar, suitable for
// sitter.NewLanguage.
func Language() unsafe.Pointer {
	return unsafe.Pointer(C.tree_sitter_luma())
}
