package main

import (
	"github.com/DrSkyle/shopnet/cmd/shopnet/commands"
)

func main() {
	commands.Execute()
}
