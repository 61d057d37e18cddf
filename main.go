package main

import "github.com/Steve-651/mcp-youtube/cmd"

func main() {
	cmd.Execute()
}
