package kit

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next Endpoint) Endpoint {
			return func(ctx context.Context, req any) (any, error) {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}
	ep := Chain(mw("a"), mw("b"), mw("c"))(func(context.Context, any) (any, error) {
		order = append(order, "endpoint")
		return nil, nil
	})

	_, err := ep(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "endpoint"}, order)
}

func TestRequestID(t *testing.T) {
	var seen string
	ep := RequestID()(func(ctx context.Context, _ any) (any, error) {
		seen = GetRequestID(ctx)
		return nil, nil
	})

	ep(context.Background(), nil)
	_, err := uuid.Parse(seen)
	assert.NoError(t, err, "generated id %q", seen)

	ep(WithRequestID(context.Background(), "fixed"), nil)
	assert.Equal(t, "fixed", seen)
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ok := Logging(logger, "match")(func(context.Context, any) (any, error) { return "r", nil })
	resp, err := ok(WithTransport(context.Background(), "mcp"), nil)
	require.NoError(t, err)
	assert.Equal(t, "r", resp)
	assert.Contains(t, buf.String(), "endpoint=match")
	assert.Contains(t, buf.String(), "transport=mcp")

	buf.Reset()
	failing := Logging(logger, "search")(func(context.Context, any) (any, error) { return nil, errors.New("boom") })
	_, err = failing(context.Background(), nil)
	assert.EqualError(t, err, "boom")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "transport=http")
}
