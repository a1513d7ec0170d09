// Package main is the entry point for the hiringhook CLI application.
// It runs the hiring webhook flow that submits the SQL challenge answer.
package main

import (
	"hiringhook/cli/cmd"
)

func main() {
	cmd.Execute()
}
