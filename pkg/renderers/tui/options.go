package tui

import "io"

// Option configures a Session or Notifier.
type Option func(*settings)

type settings struct {
	driver PromptDriver
	out    io.Writer
}

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *settings) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithOutput sets where the default driver prints notifications and notes.
// Ignored when WithPromptDriver is also given.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		s.out = w
	}
}

func applyOptions(options []Option) settings {
	var s settings
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&s)
	}
	if s.driver == nil {
		s.driver = newSurveyDriver(s.out)
	}
	return s
}
