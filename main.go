package main

import (
	"os"

	"github.com/thenoetrevino/trench/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
