package main

import "svinstall/internal/cli"

func main() {
	cli.Execute()
}
