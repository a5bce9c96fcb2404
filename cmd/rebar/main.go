package main

import (
	"rebar/cmd/rebar/commands"

	"github.com/charmbracelet/log"
)

func main() {
	if err := commands.Execute(); err != nil {
		log.Fatal(err)
	}
}
