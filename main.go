package main

import "scene-inspector/cmd"

func main() {
	cmd.Execute()
}
