package main

import (
	"github.com/velmark/screenhunt/internal/cli"
)

func main() {
	cli.Execute()
}
