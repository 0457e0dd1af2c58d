package log_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"shareit/pkg/log"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-42")
	assert.Equal(t, "req-42", log.RequestIDFromContext(ctx))
	assert.Empty(t, log.RequestIDFromContext(context.Background()))
}

func TestInitDoesNotPanicOnUnknownLevel(t *testing.T) {
	l := log.Init(log.ZapConfig{Level: "chatty", Mode: log.ModeProduction, Encoding: log.EncodingJSON})
	assert.NotPanics(t, func() {
		l.Infof(log.WithRequestID(context.Background(), "r1"), "hello %s", "world")
		l.Debug(context.Background(), "filtered out")
	})
}
