package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/linkaudit"
)

// AnalyzeCmd audits a single URL and presents the outcome.
type AnalyzeCmd struct {
	URL string
	Yes bool
}

// Run executes the audit. A URL that cannot be analyzed is presented as a
// failure and returned as an error, so the process exits non-zero.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	p := deps.Presenter

	if err := p.Welcome(); err != nil {
		return err
	}

	url := strings.TrimSpace(c.URL)
	if url == "" {
		var err error
		if url, err = promptURL(deps); err != nil {
			return err
		}
	}

	report, auditErr := deps.Auditor.Audit(deps.Ctx, url)
	if auditErr != nil {
		deps.Logger.Error("audit failed", "url", url, "err", auditErr)
		if err := p.Failure(url, auditErr); err != nil {
			return err
		}
	} else {
		deps.Logger.Info("audit complete",
			"url", url,
			"runId", report.RunID,
			"verdict", report.ClassifierVerdict.String(),
		)
		if err := p.Report(report); err != nil {
			return err
		}
	}

	exit := true
	if !c.Yes {
		var err error
		if exit, err = p.ConfirmExit(); err != nil {
			return err
		}
	}
	if err := p.Farewell(exit); err != nil {
		return err
	}

	if auditErr != nil {
		return &presentedError{err: auditErr}
	}
	return nil
}

// promptURL asks for the URL on the prompt writer and reads one line.
func promptURL(deps *Dependencies) (string, error) {
	fmt.Fprint(deps.Prompts, "News URL: ")
	line, err := deps.Stdin.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", linkaudit.Errorf(linkaudit.EINVALID, "read URL: %v", err)
	}
	url := strings.TrimSpace(line)
	if url == "" {
		return "", linkaudit.Errorf(linkaudit.EINVALID, "a URL is required")
	}
	return url, nil
}
