package main

import "github.com/Beastly713/lagrange/cmd"

func main() {
	cmd.Execute()
}
