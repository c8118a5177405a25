package main

import "github.com/notargets/tfimesh/cmd"

func main() {
	cmd.Execute()
}
