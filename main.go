package main

import "github.com/savrasov/hubic-agent/cmd"

func main() {
	cmd.Execute()
}
