package main

import (
	"github.com/josephcopenhaver/bases/internal/cmd"
)

var version = "v0.1.0"

func main() {
	cmd.Execute(version)
}
