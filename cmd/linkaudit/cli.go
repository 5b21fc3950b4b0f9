package main

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/linkaudit"
	"github.com/fwojciec/linkaudit/audit"
	"github.com/fwojciec/linkaudit/bayes"
	"github.com/fwojciec/linkaudit/goquery"
	"github.com/fwojciec/linkaudit/govader"
	lahttp "github.com/fwojciec/linkaudit/http"
	lajson "github.com/fwojciec/linkaudit/json"
	"github.com/fwojciec/linkaudit/markdown"
	"github.com/fwojciec/linkaudit/readability"
	laregexp "github.com/fwojciec/linkaudit/regexp"
	laslog "github.com/fwojciec/linkaudit/slog"
	"github.com/fwojciec/linkaudit/trafilatura"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL       string        `short:"u" env:"LINKAUDIT_URL" help:"News article URL to analyze (prompted for when omitted)"`
	Timeout   time.Duration `short:"t" default:"10s" env:"LINKAUDIT_TIMEOUT" help:"Fetch timeout"`
	UserAgent string        `default:"linkaudit/1.0" env:"LINKAUDIT_USER_AGENT" help:"User-Agent header sent with the request"`
	Format    string        `short:"f" enum:"text,markdown,json" default:"text" env:"LINKAUDIT_FORMAT" help:"Output format (text, markdown, json)"`
	Extractor string        `short:"e" enum:"paragraphs,readability,trafilatura" default:"paragraphs" env:"LINKAUDIT_EXTRACTOR" help:"Body text extractor (paragraphs, readability, trafilatura)"`
	Yes       bool          `short:"y" help:"Exit without asking"`
	LogLevel  string        `enum:"debug,info,warn,error" default:"warn" env:"LINKAUDIT_LOG_LEVEL" help:"Log level for diagnostics on stderr"`

	Config kong.ConfigFlag `help:"YAML file with flag defaults"`
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  *bufio.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Prompts is where interactive prompts are written. It is stdout for
	// text output and stderr otherwise, keeping machine-readable output clean.
	Prompts io.Writer

	Logger    *slog.Logger
	Auditor   *audit.Auditor
	Presenter linkaudit.Presenter
}

// wire builds the dependencies selected by the parsed flags.
func (m *Main) wire(ctx context.Context, cli *CLI, stdin io.Reader, stdout, stderr io.Writer) (*Dependencies, error) {
	level, err := laslog.ParseLevel(cli.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := slog.New(laslog.NewHandler(stderr, level))

	trackers, err := laregexp.NewTrackingDetector(linkaudit.DefaultTrackingSignatures())
	if err != nil {
		return nil, err
	}

	// The model is rebuilt from the fixed examples on every run; it never
	// sees the analyzed page.
	model, err := bayes.Train(linkaudit.DefaultTrainingExamples())
	if err != nil {
		return nil, err
	}

	var fetcher linkaudit.Fetcher = m.Fetcher
	if fetcher == nil {
		fetcher = lahttp.NewFetcher(
			lahttp.WithTimeout(cli.Timeout),
			lahttp.WithUserAgent(cli.UserAgent),
		)
	}

	deps := &Dependencies{
		Ctx:     ctx,
		Stdin:   bufio.NewReader(stdin),
		Stdout:  stdout,
		Stderr:  stderr,
		Prompts: stderr,
		Logger:  logger,
		Auditor: &audit.Auditor{
			Fetcher:    laslog.NewLoggingFetcher(fetcher, logger),
			Extractor:  laslog.NewLoggingExtractor(newExtractor(cli.Extractor), logger),
			Sentiment:  govader.NewSentimentAnalyzer(),
			Trackers:   trackers,
			Links:      goquery.NewLinkDetector(),
			Classifier: laslog.NewLoggingClassifier(model, logger),
		},
	}

	switch cli.Format {
	case "markdown":
		deps.Presenter = markdown.NewPresenter(stdout)
	case "json":
		deps.Presenter = lajson.NewPresenter(stdout, lajson.WithPrettyPrint())
	default:
		deps.Prompts = stdout
		deps.Presenter = NewConsole(deps.Stdin, stdout)
	}

	return deps, nil
}

func newExtractor(name string) linkaudit.Extractor {
	switch name {
	case "readability":
		return readability.NewExtractor()
	case "trafilatura":
		return trafilatura.NewExtractor()
	default:
		return goquery.NewExtractor()
	}
}
