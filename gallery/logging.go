package gallery

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger builds the process logger from the log section of the config
func NewLogger(cfg ConfigLog) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	if cfg.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("while parsing log level: %w", err)
		}
		zc.Level = level
	}
	return zc.Build()
}
