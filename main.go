package main

import "github.com/nathanhack/fecsim/cmd"

func main() {
	cmd.Execute()
}
