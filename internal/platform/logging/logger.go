package logging

import (
	"log"

	"go.uber.org/zap"
)

// New builds the engine logger. Debug mode switches to the human-readable
// development encoder; otherwise JSON, matching what the judge services emit.
func New(debug bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	return logger
}
