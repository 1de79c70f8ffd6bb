package main

import (
	"os"

	"github.com/idilsaglam/redthread/internal/cli"
)

func main() {
	// Menu session by default; `habits browse` for the full-screen list.
	os.Exit(cli.Run(cli.Habits, os.Args[1:], cli.Options{}))
}
