package main

import "github.com/Freedom18946/audio-analyzer/cmd"

func main() {
	cmd.Execute()
}
