package main

import (
	"alloggi/internal/commands"
)

func main() {
	commands.Execute()
}
