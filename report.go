package linkaudit

import "time"

// Sentinels rendered in place of absent page metadata.
const (
	NoTitle       = "No Title"
	NoDescription = "No Description"
)

// Report is the combined outcome of auditing one page.
type Report struct {
	RunID       string    `json:"runId"`
	URL         string    `json:"url"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	AnalyzedAt  time.Time `json:"analyzedAt"`

	SentimentLabel SentimentLabel `json:"sentimentLabel"`
	Polarity       float64        `json:"polarity"`
	Subjectivity   float64        `json:"subjectivity"`

	TrackingSignatureFound bool     `json:"trackingSignatureFound"`
	ExternalLinks          []string `json:"externalLinks"`
	ClassifierVerdict      Label    `json:"classifierVerdict"`

	// ContentHash is an xxhash of the raw HTML, useful for telling whether
	// the page changed between two audits.
	ContentHash string `json:"contentHash"`
}

// DisplayTitle returns the title, or NoTitle when the page had none.
func (r *Report) DisplayTitle() string {
	if r.Title == nil {
		return NoTitle
	}
	return *r.Title
}

// DisplayDescription returns the description, or NoDescription when the
// page had none.
func (r *Report) DisplayDescription() string {
	if r.Description == nil {
		return NoDescription
	}
	return *r.Description
}

// Presenter renders audit outcomes for a human and handles the interactive
// parts of a session. Non-interactive presenters treat Welcome and Farewell
// as no-ops and always confirm exit.
type Presenter interface {
	// Welcome is called once before any audit runs.
	Welcome() error

	// Report renders a successful audit.
	Report(report *Report) error

	// Failure renders an audit that could not be completed.
	Failure(url string, err error) error

	// ConfirmExit asks whether the session should end.
	ConfirmExit() (bool, error)

	// Farewell is called last with the answer from ConfirmExit.
	Farewell(exit bool) error
}
