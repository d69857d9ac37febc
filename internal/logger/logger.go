package logger

import "go.uber.org/zap"

// NewNamed builds a named zap logger for the given environment: human
// readable in development, JSON in anything else.
func NewNamed(appEnv, name string) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)

	if appEnv == "development" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	return l.Named(name), nil
}
