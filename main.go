package main

import "github.com/antigravity/petit/cmd"

func main() {
	cmd.Execute()
}
