package main

import (
	"github.com/andrescamacho/sectormarket-go/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
