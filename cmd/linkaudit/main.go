package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/alecthomas/kong"
	"github.com/fwojciec/linkaudit"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errPresented) {
			fmt.Fprintf(os.Stderr, "error: %s\n", errorText(err))
		}
		os.Exit(1)
	}
}

// errPresented marks errors the presenter has already shown to the user.
var errPresented = errors.New("presented")

type presentedError struct {
	err error
}

func (e *presentedError) Error() string { return e.err.Error() }

func (e *presentedError) Unwrap() []error { return []error{e.err, errPresented} }

// errorText returns the message of an application error, or the full error
// text for anything else (e.g. flag parsing errors).
func errorText(err error) string {
	var e *linkaudit.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Main represents the program.
type Main struct {
	// EnvFile is loaded into the environment before flags are parsed.
	// Variables already set are not overridden. Empty disables loading.
	EnvFile string

	// ConfigPath is a YAML file providing flag defaults. A missing file is
	// ignored.
	ConfigPath string

	// Fetcher replaces the HTTP fetcher, for end-to-end testing.
	Fetcher linkaudit.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		EnvFile:    ".env",
		ConfigPath: defaultConfigPath(),
	}
}

func defaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "linkaudit", "config.yaml")
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if err := loadEnvFile(m.EnvFile); err != nil {
		return err
	}

	var configPaths []string
	if m.ConfigPath != "" {
		configPaths = append(configPaths, m.ConfigPath)
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("linkaudit"),
		kong.Description("Audit a news article for tracking scripts, external links and privacy signals"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Configuration(yamlConfig, configPaths...),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	deps, err := m.wire(ctx, cli, stdin, stdout, stderr)
	if err != nil {
		return err
	}
	defer deps.Auditor.Fetcher.Close()

	cmd := &AnalyzeCmd{
		URL: cli.URL,
		Yes: cli.Yes,
	}
	return cmd.Run(deps)
}
