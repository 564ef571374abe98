package main

import (
	"fmt"
	"os"

	"github.com/oakwood-commons/tplc/cmd"
	"github.com/oakwood-commons/tplc/pkg/logger"
)

func main() {
	exitCode := 0
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitCode = 1
	}

	logger.Sync()
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
