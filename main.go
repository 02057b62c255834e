package main

import "github.com/Rorical/Gentor/cmd"

func main() {
	cmd.Execute()
}
