package main

import (
	"os"

	"github.com/confstack/confstack/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
