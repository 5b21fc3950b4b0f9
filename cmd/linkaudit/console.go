package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/linkaudit"
)

// Ensure Console implements linkaudit.Presenter at compile time.
var _ linkaudit.Presenter = (*Console)(nil)

const banner = "Welcome to the News Link Analyzer!"

// Console presents audits as plain text and asks before exiting.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a Console reading answers from in and writing to out.
func NewConsole(in *bufio.Reader, out io.Writer) *Console {
	return &Console{in: in, out: out}
}

// Welcome prints the banner in a titled box.
func (c *Console) Welcome() error {
	const title = " Welcome "
	inner := len(banner) + 2
	left := (inner - len(title)) / 2
	right := inner - len(title) - left

	fmt.Fprintf(c.out, "+%s%s%s+\n", strings.Repeat("-", left), title, strings.Repeat("-", right))
	fmt.Fprintf(c.out, "| %s |\n", banner)
	fmt.Fprintf(c.out, "+%s+\n", strings.Repeat("-", inner))
	return nil
}

// Report prints each finding on its own line.
func (c *Console) Report(r *linkaudit.Report) error {
	fmt.Fprintf(c.out, "Analyzed URL: %s\n", r.URL)
	fmt.Fprintf(c.out, "Title: %s\n", r.DisplayTitle())
	fmt.Fprintf(c.out, "Description: %s\n", r.DisplayDescription())
	fmt.Fprintf(c.out, "Text Sentiment: %s (Polarity: %.2f, Subjectivity: %.2f)\n",
		r.SentimentLabel, r.Polarity, r.Subjectivity)

	if r.TrackingSignatureFound {
		fmt.Fprintln(c.out, "The page contains known tracking scripts.")
	} else {
		fmt.Fprintln(c.out, "No known tracking scripts found.")
	}

	if len(r.ExternalLinks) > 0 {
		fmt.Fprintln(c.out, "External links found:")
		for _, link := range r.ExternalLinks {
			fmt.Fprintf(c.out, " - %s\n", link)
		}
	}

	if r.ClassifierVerdict == linkaudit.LabelTracking {
		fmt.Fprintln(c.out, "The IP may be tracked.")
	} else {
		fmt.Fprintln(c.out, "No indication of IP tracking.")
	}
	return nil
}

// Failure prints why url could not be analyzed.
func (c *Console) Failure(url string, err error) error {
	fmt.Fprintf(c.out, "Error accessing the URL %s: %s\n", url, linkaudit.ErrorMessage(err))
	return nil
}

// ConfirmExit asks whether to exit. Only y or yes, in any case, confirm.
// End of input confirms.
func (c *Console) ConfirmExit() (bool, error) {
	fmt.Fprintln(c.out, "Do you want to exit the tool? (y/n)")
	fmt.Fprint(c.out, "Enter your choice: ")

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) == "" {
			fmt.Fprintln(c.out)
			return true, nil
		}
		if !errors.Is(err, io.EOF) {
			return false, linkaudit.Errorf(linkaudit.EINVALID, "read answer: %v", err)
		}
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Farewell prints the closing message.
func (c *Console) Farewell(exit bool) error {
	if exit {
		fmt.Fprintln(c.out, "Thank you for using the News Link Analyzer! Goodbye!")
	} else {
		fmt.Fprintln(c.out, "You can analyze another URL by running the tool again.")
	}
	return nil
}
