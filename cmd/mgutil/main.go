// Package main is the entry point for the mgutil CLI.
package main

import (
	"github.com/justrnr500/mgutil/internal/cmd"
)

func main() {
	cmd.Execute()
}
