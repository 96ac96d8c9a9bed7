package log

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// From без логгера в контексте обязан вернуть slog.Default(), а не nil.
func TestFrom_Empty_ReturnsDefault(t *testing.T) {
	t.Parallel()

	got := From(context.Background())
	require.NotNil(t, got)
	require.Equal(t, slog.Default(), got)
}

// Into/From — положенный логгер достаётся тем же указателем.
func TestIntoFrom_RoundTrip(t *testing.T) {
	t.Parallel()

	l := slog.New(slog.NewTextHandler(os.Stdout, nil))
	ctx := Into(context.Background(), l)

	require.Same(t, l, From(ctx))
}

// Нулевой логгер в контексте не должен подменять дефолтный.
func TestFrom_NilLogger_FallsBack(t *testing.T) {
	t.Parallel()

	ctx := Into(context.Background(), nil)
	require.Equal(t, slog.Default(), From(ctx))
}
