package main

import (
	"os"

	"csvjson/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
