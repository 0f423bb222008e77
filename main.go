package main

import "github.com/diogo/termchat/internal/commands"

func main() {
	commands.Execute()
}
