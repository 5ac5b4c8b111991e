package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"apikit/config"
	mockRepo "apikit/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT = config.JWTConfig{
		Secret:                  "test-secret",
		AccessExpiration:        30 * time.Minute,
		RefreshExpiration:       30 * 24 * time.Hour,
		ResetPasswordExpiration: 10 * time.Minute,
		VerifyEmailExpiration:   10 * time.Minute,
	}
	cfg.Frontend.URL = "https://app.example.com/"

	return cfg
}

// passThroughTx makes the mocked transaction manager run fn directly.
func passThroughTx(tx *mockRepo.MockTransactionManager) {
	tx.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		Maybe()
}
