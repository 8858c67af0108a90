package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/muhammadgalhoum/DPS/internal/storage"
)

// removeBlob deletes key if it is still stored. An already absent blob is not an error.
func removeBlob(ctx context.Context, store storage.Storage, key string) error {
	ok, err := store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check storage: %w", err)
	}
	if !ok {
		return nil
	}
	if err := store.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return nil
}

func readBlob(ctx context.Context, store storage.Storage, key string) ([]byte, error) {
	data, err := storage.ReadAll(ctx, store, key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrBlobMissing, key)
		}
		return nil, fmt.Errorf("read storage: %w", err)
	}
	return data, nil
}
