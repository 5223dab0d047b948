package main

import "ingredient-manager/cmd"

func main() {
	cmd.Execute()
}
