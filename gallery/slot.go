package gallery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/go-git/go-billy/v6/osfs"
	"go.uber.org/zap"

	"github.com/lewtec/galeria/internal/domain"
	"github.com/lewtec/galeria/internal/repository"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}

var nopCloser = closerFunc(func() error { return nil })

// OpenSlot opens the persistence slot described by cfg. The returned closer
// releases the backend.
func OpenSlot(ctx context.Context, cfg ConfigStorage, logger *zap.Logger) (domain.Slot, io.Closer, error) {
	switch cfg.Backend {
	case BackendSQLite:
		db, err := GetDatabase(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using sqlite storage", zap.String("path", cfg.Path), zap.String("key", cfg.Key))
		return repository.NewSQLiteSlot(db, cfg.Key), db, nil
	case BackendFile:
		fs := osfs.New(filepath.Dir(cfg.Path))
		logger.Info("using file storage", zap.String("path", cfg.Path))
		return repository.NewFileSlot(fs, filepath.Base(cfg.Path)), nopCloser, nil
	case BackendRedis:
		slot, err := repository.NewRedisSlot(cfg.RedisURL, cfg.Key)
		if err != nil {
			return nil, nil, err
		}
		if err := slot.Ping(ctx); err != nil {
			slot.Close()
			return nil, nil, fmt.Errorf("while connecting to redis: %w", err)
		}
		logger.Info("using redis storage", zap.String("key", cfg.Key))
		return slot, slot, nil
	case BackendMemory:
		logger.Warn("using memory storage, the gallery will not survive a restart")
		return repository.NewMemorySlot(), nopCloser, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
