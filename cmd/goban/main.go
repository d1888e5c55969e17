package main

import (
	"github.com/mkondo/goban/internal/cli"
)

func main() {
	cli.Execute()
}
