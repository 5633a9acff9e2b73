package main

import "github.com/OpenTraceLab/OpenTraceGMID/cmd/gmid/cmd"

func main() {
	cmd.Execute()
}
