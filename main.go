// Package main is the entry point for the linterman CLI.
package main

import "linterman.dev/pkg/linterman/cmd"

func main() {
	cmd.Execute()
}
