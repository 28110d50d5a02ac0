package main

import (
	"os"

	"github.com/convoview/go-convo-monitor/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
