package main

import "github.com/KlienGumapac/freedomewall/internal/cmd"

func main() {
	cmd.Execute()
}
