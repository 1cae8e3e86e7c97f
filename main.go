// Package main is the entry point for the webhook task CLI.
// It registers for a hiring webhook and submits the SQL answer to it.
package main

import (
	"webhooktask/cli/cmd"
)

// main initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
