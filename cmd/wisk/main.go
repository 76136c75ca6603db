/*
File    : wisk/cmd/wisk/main.go

The wisk binary's entry point. All command wiring lives in cmd/wisk/cmd,
grounded on go-dws's cobra-based cmd/dwscript layout.
*/
package main

import (
	"fmt"
	"os"

	"github.com/wisklang/wisk/cmd/wisk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
