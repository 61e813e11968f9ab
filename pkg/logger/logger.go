// pkg/logger/logger.go
package logger

import (
	"go.uber.org/zap"
)

type Sugared = *zap.SugaredLogger

// New returns the service logger: JSON production output for "prod",
// console development output (debug enabled) otherwise.
func New(env string) Sugared {
	var z *zap.Logger
	if env == "prod" {
		z, _ = zap.NewProduction()
	} else {
		z, _ = zap.NewDevelopment()
	}
	return z.Sugar()
}

// Console is the sink for the dev-gated loggers. It always emits debug so
// that gating is left to the environment check.
func Console() Sugared {
	z, _ := zap.NewDevelopment(zap.WithCaller(false))
	return z.Sugar()
}
