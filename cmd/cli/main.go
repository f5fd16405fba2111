package main

import "fightcard/cmd/cli/command"

func main() {
	command.Execute()
}
