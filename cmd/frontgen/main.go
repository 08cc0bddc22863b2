package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/alecthomas/kong"

	"github.com/cuba-labs/frontgen/cmd/frontgen/internal/check"
	"github.com/cuba-labs/frontgen/cmd/frontgen/internal/cli"
	"github.com/cuba-labs/frontgen/cmd/frontgen/internal/gen"
	"github.com/cuba-labs/frontgen/cmd/frontgen/internal/preview"
)

type CLI struct {
	Verbose bool `help:"Enable debug logging." short:"v"`

	Version VersionCmd  `cmd:"" help:"Print version information."`
	Gen     gen.Cmd     `cmd:"" help:"Generate the REST services module."`
	Check   check.Cmd   `cmd:"" help:"Verify the generated services module is up to date."`
	Preview preview.Cmd `cmd:"" help:"Serve the services module over HTTP, regenerated on every request."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("frontgen %s (%s %s/%s)\n", Version(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return nil
}

func main() {
	var app CLI
	ctx := kong.Parse(&app,
		kong.Name("frontgen"),
		kong.Description("Generates TypeScript REST service stubs for CUBA front-end projects."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if app.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	err := ctx.Run(logger, cli.NewReporter(os.Stderr, app.Verbose))
	ctx.FatalIfErrorf(err)
}
