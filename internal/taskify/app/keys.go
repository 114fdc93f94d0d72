package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/taskify/pkg/jwtx"
)

// InitKeys generates the process's signing keys. Keys live only in memory,
// so every outstanding access token becomes invalid on restart.
func InitKeys(cfg Config, logger *slog.Logger) (*jwtx.KeyManager, error) {
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:  cfg.Issuer,
		NumKeys: cfg.NumKeys,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate signing keys: %w", err)
	}

	logger.Info("signing keys ready",
		slog.String("issuer", cfg.Issuer),
		slog.Int("keys", km.NumSigners()),
	)
	return km, nil
}
