package main

import "github.com/2beens/gymdash/cmd/gymdash_cli/commands"

func main() {
	commands.Execute()
}
