// Package json implements linkaudit.Presenter as JSON documents for
// consumption by other tools.
package json

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/linkaudit"
)

// Ensure Presenter implements linkaudit.Presenter at compile time.
var _ linkaudit.Presenter = (*Presenter)(nil)

// Presenter writes one JSON object per audit. Absent page metadata is
// encoded as null. It is non-interactive: Welcome and Farewell write nothing
// and ConfirmExit always returns true.
type Presenter struct {
	w io.Writer

	// prefix and indent are passed to json.Encoder.SetIndent when indent
	// is non-empty. Output is compact otherwise.
	prefix string
	indent string
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithIndent enables indented output.
func WithIndent(prefix, indent string) Option {
	return func(p *Presenter) {
		p.prefix = prefix
		p.indent = indent
	}
}

// WithPrettyPrint enables indented output with two spaces per level.
func WithPrettyPrint() Option {
	return WithIndent("", "  ")
}

// NewPresenter creates a Presenter that writes to w.
func NewPresenter(w io.Writer, opts ...Option) *Presenter {
	p := &Presenter{w: w}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// failure is the document written when a URL cannot be analyzed.
type failure struct {
	URL   string       `json:"url"`
	Error failureError `json:"error"`
}

type failureError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Welcome is a no-op.
func (p *Presenter) Welcome() error { return nil }

// Report writes the report as a JSON object.
func (p *Presenter) Report(report *linkaudit.Report) error {
	return p.encode(report)
}

// Failure writes the URL with the error's code and message.
func (p *Presenter) Failure(url string, err error) error {
	return p.encode(failure{
		URL: url,
		Error: failureError{
			Code:    linkaudit.ErrorCode(err),
			Message: linkaudit.ErrorMessage(err),
		},
	})
}

// ConfirmExit always confirms.
func (p *Presenter) ConfirmExit() (bool, error) { return true, nil }

// Farewell is a no-op.
func (p *Presenter) Farewell(bool) error { return nil }

func (p *Presenter) encode(v any) error {
	enc := json.NewEncoder(p.w)
	if p.prefix != "" || p.indent != "" {
		enc.SetIndent(p.prefix, p.indent)
	}
	if err := enc.Encode(v); err != nil {
		return linkaudit.Errorf(linkaudit.EINTERNAL, "encode json: %v", err)
	}
	return nil
}
