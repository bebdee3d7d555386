package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelsByEnv(t *testing.T) {
	ctx := context.Background()
	assert.True(t, New("dev").Enabled(ctx, slog.LevelDebug))
	assert.False(t, New("prod").Enabled(ctx, slog.LevelDebug))
	assert.True(t, New("prod").Enabled(ctx, slog.LevelInfo))
	assert.IsType(t, &slog.JSONHandler{}, New("prod").Handler())
	assert.IsType(t, &slog.TextHandler{}, New("dev").Handler())
}
