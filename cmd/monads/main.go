package main

import "justisgipson/monads/cmd/monads/commands"

func main() {
	commands.Execute()
}
