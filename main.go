package main

import "github.com/cfdlab/shocktube/cmd"

func main() {
	cmd.Execute()
}
