package main

import "github.com/username/autaxy/src/cli"

func main() {
	cli.Execute()
}
