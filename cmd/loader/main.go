package main

import (
	"os"

	"quake-bknd/internal/cli"
)

func main() {
	os.Exit(int(cli.Run()))
}
