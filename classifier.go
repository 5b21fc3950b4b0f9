package linkaudit

import "fmt"

// Label is a classifier verdict.
type Label int

// Classifier labels.
const (
	// LabelPrivacy marks privacy-respecting phrasing.
	LabelPrivacy Label = 0

	// LabelTracking marks tracking-related phrasing.
	LabelTracking Label = 1
)

// DefaultLabel is the verdict when text carries no usable evidence
// (empty, only stop words, or only words the model never saw) and the
// verdict on a tie. It leans towards reporting possible tracking.
const DefaultLabel = LabelTracking

// Valid returns true if l is one of the known labels.
func (l Label) Valid() bool {
	return l == LabelPrivacy || l == LabelTracking
}

// String returns a short name for the label.
func (l Label) String() string {
	switch l {
	case LabelPrivacy:
		return "privacy"
	case LabelTracking:
		return "tracking"
	}
	return fmt.Sprintf("label(%d)", int(l))
}

// TrainingExample is a labeled sentence used to fit a Classifier.
type TrainingExample struct {
	Text  string
	Label Label
}

// Validate returns an error if the example contains invalid fields.
func (e TrainingExample) Validate() error {
	if !e.Label.Valid() {
		return Errorf(EINVALID, "training example %q has unknown label %d", e.Text, int(e.Label))
	}
	return nil
}

// DefaultTrainingExamples returns the fixed training set. A new slice is
// returned on every call so callers cannot mutate shared state.
func DefaultTrainingExamples() []TrainingExample {
	return []TrainingExample{
		{Text: "This site collects user data.", Label: LabelTracking},
		{Text: "We do not track personal information.", Label: LabelPrivacy},
		{Text: "We are committed to user privacy.", Label: LabelPrivacy},
		{Text: "We collect information to improve our services.", Label: LabelTracking},
	}
}

// Classifier scores text as tracking-indicative or not.
type Classifier interface {
	// Predict returns the most likely label for text.
	// It never fails; degenerate input yields DefaultLabel.
	Predict(text string) Label
}
