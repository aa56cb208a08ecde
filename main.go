package main

import "github.com/prefkit/prefkit/cmd"

func main() {
	cmd.Execute()
}
