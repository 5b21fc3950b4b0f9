package mock

import "github.com/fwojciec/linkaudit"

var _ linkaudit.Presenter = (*Presenter)(nil)

// Presenter is a mock implementation of linkaudit.Presenter.
type Presenter struct {
	WelcomeFn     func() error
	ReportFn      func(report *linkaudit.Report) error
	FailureFn     func(url string, err error) error
	ConfirmExitFn func() (bool, error)
	FarewellFn    func(exit bool) error
}

func (p *Presenter) Welcome() error {
	return p.WelcomeFn()
}

func (p *Presenter) Report(report *linkaudit.Report) error {
	return p.ReportFn(report)
}

func (p *Presenter) Failure(url string, err error) error {
	return p.FailureFn(url, err)
}

func (p *Presenter) ConfirmExit() (bool, error) {
	return p.ConfirmExitFn()
}

func (p *Presenter) Farewell(exit bool) error {
	return p.FarewellFn(exit)
}
