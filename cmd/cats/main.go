package main

import "github.com/deppfellow/go-cats/cmd/cats/cmd"

func main() {
	cmd.Execute()
}
