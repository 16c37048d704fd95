package main

import "github.com/khanhnv2901/sri-cli/cmd"

var execCmd = cmd.Execute

func main() {
	execCmd()
}
