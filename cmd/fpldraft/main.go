package main

import "github.com/masykur/fpldraft/internal/interfaces/cli"

func main() {
	cli.Execute()
}
