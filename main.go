package main

import (
	"context"
	"os"

	"github.com/wyc-thg/broker/internal/adapters/in/cli"
	"github.com/wyc-thg/broker/pkg/version"
)

var (
	buildVersion string
	commit       string
	date         string
)

func main() {
	version.Set(buildVersion, commit, date)

	if err := cli.NewRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
