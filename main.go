package main

import "github.com/dev-mohitbeniwal/metacat/cmd"

func main() {
	cmd.Execute()
}
