package main

import "github.com/katalvlaran/planelp/internal/cli"

func main() {
	cli.Execute()
}
