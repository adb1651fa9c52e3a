package main

import "github.com/nfrund/voxnote/cmd/voxnote/cmd"

func main() {
	cmd.Execute()
}
