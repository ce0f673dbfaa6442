package main

import (
	"github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
