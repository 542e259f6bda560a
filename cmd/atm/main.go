package main

import (
	"fmt"
	"os"

	"github.com/tutu-network/atm/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "atm:", err)
		os.Exit(1)
	}
}
