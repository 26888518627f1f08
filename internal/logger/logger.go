package logger

import (
	"go.uber.org/zap"

	"github.com/aliskhannn/quran-dataset-check/internal/config"
)

// New builds a logger for the configured environment. Both variants write to stderr,
// leaving stdout to the report.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Env == "production" {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}
