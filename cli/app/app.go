package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/macladson/milhouse/cli/leaf"
	"github.com/macladson/milhouse/pkg/config"
	"github.com/urfave/cli"
)

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "Milhouse\nVersion: %s\nGoVersion: %s\n",
		config.Version,
		runtime.Version(),
	)
}

// New creates a Milhouse instance of [cli.App] with all commands included.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "milhouse"
	ctl.Version = config.Version
	ctl.Usage = "Packed leaf tool for persistent Merkle lists"
	ctl.ErrWriter = os.Stdout

	ctl.Commands = append(ctl.Commands, leaf.NewCommands()...)
	return ctl
}
