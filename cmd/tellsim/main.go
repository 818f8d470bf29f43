package main

import (
	"github.com/tellsim/tellsim-go/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
