package main

import (
	"fmt"
	"os"

	"github.com/splax/worksim/internal/cli"
)

var buildVersion = "dev"

func main() {
	cli.SetVersion(buildVersion)
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
