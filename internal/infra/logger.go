// README: Structured logger initialization (zap).
package infra

import "go.uber.org/zap"

// NewLogger builds the process-wide structured logger.
func NewLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}
