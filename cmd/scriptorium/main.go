// CLAUDE:SUMMARY scriptorium CLI: serve the rendering API (HTTP/2 + HTTP/3 + MCP) or render, validate and inspect scripts from the terminal.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
)

const version = "0.1.0"

type Globals struct {
	Config string `short:"c" default:"config.yaml" help:"Path to config file." type:"path"`
}

type cli struct {
	Globals

	Serve     serveCmd     `cmd:"" help:"Start the HTTP server (TCP + HTTP/3)."`
	Render    renderCmd    `cmd:"" help:"Render text in a language's authentic script."`
	Alphabet  alphabetCmd  `cmd:"" help:"Print the alphabet of a language."`
	Validate  validateCmd  `cmd:"" help:"Check whether text follows a language's script rules."`
	Languages languagesCmd `cmd:"" help:"List configured languages."`
	Version   versionCmd   `cmd:"" help:"Print version."`
}

type versionCmd struct{}

func (versionCmd) Run(out io.Writer) error {
	_, err := io.WriteString(out, "scriptorium "+version+"\n")
	return err
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("scriptorium"),
		kong.Description("Authentic-script rendering for historical writing systems"),
		kong.UsageOnError(),
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)
	ctx.FatalIfErrorf(ctx.Run(&c.Globals))
}
