package main

import (
	"os"

	"github.com/kkutopiaa/tdd-restful-service/cmd/server/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
