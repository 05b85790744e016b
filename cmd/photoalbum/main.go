package main

import "github.com/angie11-11/PhotoApp/internal/cli"

func main() {
	cli.Execute()
}
