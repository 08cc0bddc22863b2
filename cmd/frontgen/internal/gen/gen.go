package gen

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cuba-labs/frontgen/cmd/frontgen/internal/cli"
)

type Cmd struct {
	cli.Options `embed:""`

	Dest string `help:"Destination directory; relative paths resolve against the working directory." short:"d" default:"."`
}

func (c *Cmd) Run(logger *slog.Logger, rep *cli.Reporter) error {
	return c.run(logger, rep, os.Stdout)
}

func (c *Cmd) run(logger *slog.Logger, rep *cli.Reporter, stdout io.Writer) error {
	dest, err := filepath.Abs(c.Dest)
	if err != nil {
		return fmt.Errorf("resolve destination: %w", err)
	}

	result, err := c.Generator(logger).ToDir(dest)
	if err != nil {
		return err
	}

	rep.Warnings(result.Warnings)
	for _, f := range result.Files {
		fmt.Fprintln(stdout, filepath.Join(dest, filepath.FromSlash(f.Path)))
	}
	rep.Success("%d services, %d methods", result.Services, result.Methods)
	return nil
}
