package check

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cuba-labs/frontgen/cmd/frontgen/internal/cli"
)

// ErrOutOfDate is returned when a generated file on disk differs from a fresh generation.
var ErrOutOfDate = errors.New("generated files are out of date; run frontgen gen")

type Cmd struct {
	cli.Options `embed:""`

	Dest    string `help:"Directory holding the generated files." short:"d" default:"."`
	Context int    `help:"Unchanged lines shown around each difference." default:"3"`
}

func (c *Cmd) Run(logger *slog.Logger, rep *cli.Reporter) error {
	result, err := c.Generator(logger).Generate()
	if err != nil {
		return err
	}
	rep.Warnings(result.Warnings)

	stale := 0
	for _, f := range result.Files {
		path := filepath.Join(c.Dest, filepath.FromSlash(f.Path))
		onDisk, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("read %s: %w", path, err)
			}
			rep.Failure("%s is missing", path)
			stale++
			continue
		}

		diff := cli.LineDiff(string(onDisk), string(f.Content), c.Context)
		if diff == nil {
			rep.Success("%s is up to date", path)
			continue
		}
		rep.Failure("%s is out of date", path)
		rep.Diff(diff)
		stale++
	}

	if stale > 0 {
		return ErrOutOfDate
	}
	return nil
}
