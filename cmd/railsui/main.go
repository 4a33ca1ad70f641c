package main

import (
	"context"
	"fmt"
	"os"

	"github.com/welloca/railsui/internal/cli"
	"github.com/welloca/railsui/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	root := cli.NewRootCommand(info, os.Stdout, os.Stderr)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "railsui: %v\n", err)
		os.Exit(1)
	}
}
