package main

import "github.com/mcoot/unscramble/internal/cli"

func main() {
	cli.Execute()
}
