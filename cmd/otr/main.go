package main

import "github.com/OpenTraceLab/OpenTraceRoom/cmd/otr/cmd"

func main() {
	cmd.Execute()
}
