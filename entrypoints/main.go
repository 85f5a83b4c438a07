package main

import (
	"github.com/Laisky/storage-insights-mcp/cmd"
)

func main() {
	cmd.Execute()
}
