package main

import "go.llib.dev/featurebook/internal/cli"

func main() {
	cli.Execute()
}
