package main

import "github.com/luminadental/lumina/internal/cli"

func main() {
	cli.Execute()
}
