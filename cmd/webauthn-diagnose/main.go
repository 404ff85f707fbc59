package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/vibhorag101/SimpleWebAuthn/browser"
	"github.com/vibhorag101/SimpleWebAuthn/errors"
	"github.com/vibhorag101/SimpleWebAuthn/internal/report"
)

// Global is passed to every command's Run method.
type Global struct {
	Logger *slog.Logger
	Stdout io.Writer
}

// CLI is the command-line definition.
type CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Classify ClassifyCmd `cmd:"" help:"Diagnose a failed authentication ceremony described in a report file"`
	Codes    CodesCmd    `cmd:"" help:"List the diagnosis codes"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply(g *Global) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	g.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return nil
}

// ClassifyCmd implements the classify command.
type ClassifyCmd struct {
	Report string `arg:"" type:"existingfile" help:"Report file (YAML or JSON)"`
	Indent bool   `help:"Indent JSON output"`
}

// Run loads the report, diagnoses it and writes the Result as JSON.
func (c *ClassifyCmd) Run(g *Global) error {
	rep, err := report.Load(c.Report)
	if err != nil {
		return err
	}

	result, err := rep.Run(browser.WithLogger(g.Logger))
	if err != nil {
		return err
	}
	g.Logger.Debug("report classified", "path", c.Report, "code", result.Error.Code, "diagnosed", result.Diagnosed)

	enc := json.NewEncoder(g.Stdout)
	if c.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		return errors.Wrap(err, errors.CodeUnknown, "failed to write result")
	}
	return nil
}

// CodesCmd implements the codes command.
type CodesCmd struct{}

// Run prints each diagnosis code with its default classification.
func (c *CodesCmd) Run(g *Global) error {
	for _, code := range errors.DiagnosisCodes() {
		if _, err := fmt.Fprintf(g.Stdout, "%-28s %s\n", code, code.DefaultClassification()); err != nil {
			return errors.Wrap(err, errors.CodeUnknown, "failed to write codes")
		}
	}
	return nil
}

func main() {
	var cli CLI
	global := &Global{Stdout: os.Stdout}

	ctx := kong.Parse(&cli,
		kong.Name("webauthn-diagnose"),
		kong.Description("Diagnose failed WebAuthn authentication ceremonies."),
		kong.Bind(global),
	)

	if err := ctx.Run(global); err != nil {
		if global.Logger != nil {
			global.Logger.Error("Command failed", "error", err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
