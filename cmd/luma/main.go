package main

import "github.com/APConduct/tree-sitter-luma/internal/cli"

func main() {
	cli.Execute()
}
