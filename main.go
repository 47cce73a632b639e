package main

import (
	"os"

	"github.com/bayesimpact/gitreview/pkg/cli"
	"github.com/bayesimpact/gitreview/pkg/domain/types"
)

func main() {
	if err := cli.New().Run(os.Args); err != nil {
		os.Exit(types.ExitCode(err))
	}
}
