package main

import (
	"os"

	"github.com/r9s-ai/onr-provider-gen/internal/cli"
	"github.com/r9s-ai/onr-provider-gen/internal/logx"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		logx.Errorf("%v", err)
		os.Exit(1)
	}
}
