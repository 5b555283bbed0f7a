// Package main implements the langsurvey CLI.
// It reports which programming languages a project directory contains,
// judged by file extensions.
package main

import (
	"os"

	"github.com/l3aro/go-langsurvey/cmd/langsurvey/commands"
)

var version = "dev"

func main() {
	commands.RootCmd.Version = version
	commands.RootCmd.SetVersionTemplate(`langsurvey version {{.Version}}
`)

	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
