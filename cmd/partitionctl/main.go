package main

import (
	"github.com/bytom/timepart/cmd/partitionctl/commands"
)

func main() {
	commands.Execute()
}
