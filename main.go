package main

import "theme-parity/internal/cli"

func main() {
	cli.Execute()
}
