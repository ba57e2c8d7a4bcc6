package main

import (
	"os"

	"github.com/jbdamask/botcmd/cmd/botcmd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
