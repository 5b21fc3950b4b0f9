package main_test

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/fwojciec/linkaudit"
	main "github.com/fwojciec/linkaudit/cmd/linkaudit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConsole(input string) (*main.Console, *bytes.Buffer) {
	var out bytes.Buffer
	return main.NewConsole(bufio.NewReader(strings.NewReader(input)), &out), &out
}

func TestConsole_Welcome(t *testing.T) {
	t.Parallel()

	c, out := newConsole("")

	require.NoError(t, c.Welcome())

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], " Welcome ")
	assert.Equal(t, "| Welcome to the News Link Analyzer! |", lines[1])
	assert.Equal(t, len(lines[0]), len(lines[1]))
	assert.Equal(t, len(lines[2]), len(lines[1]))
}

func TestConsole_Report(t *testing.T) {
	t.Parallel()

	t.Run("prints sentinels for absent metadata", func(t *testing.T) {
		t.Parallel()

		c, out := newConsole("")

		require.NoError(t, c.Report(&linkaudit.Report{
			URL:               "https://example.com",
			SentimentLabel:    linkaudit.SentimentNeutral,
			ExternalLinks:     []string{},
			ClassifierVerdict: linkaudit.LabelPrivacy,
		}))

		output := out.String()
		assert.Contains(t, output, "Title: No Title\n")
		assert.Contains(t, output, "Description: No Description\n")
		assert.Contains(t, output, "Text Sentiment: Neutral (Polarity: 0.00, Subjectivity: 0.00)\n")
		assert.Contains(t, output, "No known tracking scripts found.\n")
		assert.NotContains(t, output, "External links found:")
		assert.Contains(t, output, "No indication of IP tracking.\n")
	})

	t.Run("formats scores to two decimals", func(t *testing.T) {
		t.Parallel()

		c, out := newConsole("")

		require.NoError(t, c.Report(&linkaudit.Report{
			SentimentLabel: linkaudit.SentimentPositive,
			Polarity:       0.6249,
			Subjectivity:   0.333,
		}))

		assert.Contains(t, out.String(), "Text Sentiment: Positive (Polarity: 0.62, Subjectivity: 0.33)")
	})
}

func TestConsole_ConfirmExit(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name  string
		input string
		want  bool
	}{
		{name: "y confirms", input: "y\n", want: true},
		{name: "yes in any case confirms", input: "  YeS \n", want: true},
		{name: "n declines", input: "n\n", want: false},
		{name: "anything else declines", input: "maybe\n", want: false},
		{name: "answer without newline is read", input: "y", want: true},
		{name: "end of input confirms", input: "", want: true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, out := newConsole(tt.input)

			got, err := c.ConfirmExit()

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Do you want to exit the tool? (y/n)")
		})
	}
}

func TestConsole_Farewell(t *testing.T) {
	t.Parallel()

	c, out := newConsole("")

	require.NoError(t, c.Farewell(true))
	require.NoError(t, c.Farewell(false))

	assert.Equal(t, "Thank you for using the News Link Analyzer! Goodbye!\n"+
		"You can analyze another URL by running the tool again.\n", out.String())
}
