package main

import "github.com/notargets/fem1d/cmd"

func main() {
	cmd.Execute()
}
