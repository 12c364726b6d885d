/*
File: main.go
Description: Entry point of the adfa command. Builds an adaptable DFA from
seed strings, classifies input against it, and grows it with novel strings.
*/

package main

import (
	"fmt"
	"os"

	"github.com/LadyLoBentley/AdaptableDFA/cmd/adfa/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
