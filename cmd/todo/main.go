package main

import (
	"os"

	"github.com/rgallais/todo/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
