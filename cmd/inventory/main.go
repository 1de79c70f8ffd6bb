package main

import (
	"os"

	"github.com/idilsaglam/redthread/internal/cli"
)

func main() {
	os.Exit(cli.Run(cli.Inventory, os.Args[1:], cli.Options{}))
}
