package mock_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/linkaudit"
	"github.com/fwojciec/linkaudit/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresenter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where Presenter is expected
	var _ linkaudit.Presenter = &mock.Presenter{}
}

func TestPresenter_Failure(t *testing.T) {
	t.Parallel()

	t.Run("delegates to FailureFn", func(t *testing.T) {
		t.Parallel()

		var gotURL string
		var gotErr error
		p := &mock.Presenter{
			FailureFn: func(url string, err error) error {
				gotURL, gotErr = url, err
				return nil
			},
		}

		cause := errors.New("boom")
		err := p.Failure("https://example.com", cause)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com", gotURL)
		assert.Equal(t, cause, gotErr)
	})
}
