// Package markdown implements linkaudit.Presenter as Markdown documents
// using github.com/nao1215/markdown.
package markdown

import (
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/linkaudit"
	"github.com/nao1215/markdown"
)

// Ensure Presenter implements linkaudit.Presenter at compile time.
var _ linkaudit.Presenter = (*Presenter)(nil)

// Presenter writes one Markdown document per audit. It is non-interactive:
// Welcome and Farewell write nothing and ConfirmExit always returns true.
type Presenter struct {
	w io.Writer
}

// NewPresenter creates a Presenter that writes to w.
func NewPresenter(w io.Writer) *Presenter {
	return &Presenter{w: w}
}

// Welcome is a no-op.
func (p *Presenter) Welcome() error { return nil }

// Report writes the report as a Markdown document.
func (p *Presenter) Report(report *linkaudit.Report) error {
	md := markdown.NewMarkdown(p.w)

	md.H1("Link Audit Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"URL", "`" + report.URL + "`"},
			{"Title", report.DisplayTitle()},
			{"Description", report.DisplayDescription()},
			{"Analyzed At", report.AnalyzedAt.Format(time.RFC3339)},
			{"Run ID", "`" + report.RunID + "`"},
			{"Content Hash", "`" + report.ContentHash + "`"},
		},
	})
	md.PlainText("")

	md.H2("Sentiment")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Label", "Polarity", "Subjectivity"},
		Rows: [][]string{
			{string(report.SentimentLabel), fmt.Sprintf("%.2f", report.Polarity), fmt.Sprintf("%.2f", report.Subjectivity)},
		},
	})
	md.PlainText("")

	md.H2("Tracking")
	md.PlainText("")
	if report.TrackingSignatureFound {
		md.Warningf("A known tracking script signature was found in the page source.")
	} else {
		md.Note("No known tracking script signatures were found.")
	}
	md.PlainText("")

	md.H2("External Links")
	md.PlainText("")
	if len(report.ExternalLinks) == 0 {
		md.PlainText("No external links found.")
	} else {
		items := make([]string, len(report.ExternalLinks))
		for i, link := range report.ExternalLinks {
			items[i] = "`" + link + "`"
		}
		md.BulletList(items...)
	}
	md.PlainText("")

	md.H2("Tracking Likelihood")
	md.PlainText("")
	if report.ClassifierVerdict == linkaudit.LabelTracking {
		md.Cautionf("The IP may be tracked.")
	} else {
		md.Tip("No indication of IP tracking.")
	}
	md.PlainText("")

	return md.Build()
}

// Failure writes a section describing why url could not be analyzed.
func (p *Presenter) Failure(url string, err error) error {
	md := markdown.NewMarkdown(p.w)

	md.H1("Link Audit Failed")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"URL", "`" + url + "`"},
			{"Code", linkaudit.ErrorCode(err)},
		},
	})
	md.PlainText("")
	md.Cautionf("Could not analyze the URL: %s", linkaudit.ErrorMessage(err))
	md.PlainText("")

	return md.Build()
}

// ConfirmExit always confirms.
func (p *Presenter) ConfirmExit() (bool, error) { return true, nil }

// Farewell is a no-op.
func (p *Presenter) Farewell(bool) error { return nil }
