package main

import (
	"os"

	"footman/internal/cli"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var version = "0.1.0"

func main() {
	// Set up logging
	commonlog.Configure(1, nil)

	if err := cli.NewRootCommand(version).Execute(); err != nil {
		os.Exit(1)
	}
}
