package main

import (
	"fmt"
	"os"

	"github.com/Brommah/contentfinal-sub002/internal/client/cli"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(cli.Execute(fmt.Sprintf("%s (built %s, commit %s)", Version, BuildDate, GitCommit)))
}
