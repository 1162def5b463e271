package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lewtec/galeria/gallery"
	"github.com/lewtec/galeria/internal/domain"
	"github.com/lewtec/galeria/internal/store"
)

// saveFailures counts storage failures reported while a command runs
type saveFailures int

func (s *saveFailures) Notify(messageID string) {
	if messageID == domain.NoticeSaveFailed {
		*s++
	}
}

// openStore opens the configured storage without loading it
func openStore(cmd *cobra.Command, config *gallery.Config, opts ...store.Option) (*store.Store, io.Closer, *zap.Logger, error) {
	logger, err := gallery.NewLogger(config.Log)
	if err != nil {
		return nil, nil, nil, err
	}
	slot, closer, err := gallery.OpenSlot(cmd.Context(), config.Storage, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	opts = append([]store.Option{store.WithLogger(logger.Named("store"))}, opts...)
	return store.New(slot, opts...), closer, logger, nil
}
