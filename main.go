package main

import "github.com/amterp/hilite/internal/cli"

func main() {
	cli.Run()
}
