package main

import (
	"github.com/tverdon/minegrid/cmd"
)

func main() {
	cmd.Execute()
}
