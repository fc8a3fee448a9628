package logger

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type fakeCollection struct {
	mu   sync.Mutex
	docs []LogDocument
}

func (f *fakeCollection) InsertMany(_ context.Context, documents []interface{}, _ ...*options.InsertManyOptions) (*mongo.InsertManyResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range documents {
		f.docs = append(f.docs, d.(LogDocument))
	}
	return &mongo.InsertManyResult{}, nil
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestConsoleHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	slog.New(newConsoleHandler(&buf, "production", "info")).Info("hello", "count", 3)
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"count":3`)

	buf.Reset()
	slog.New(newConsoleHandler(&buf, "local", "warn")).Info("dropped")
	assert.Empty(t, buf.String())
}

func TestMongoHandlerFlushesOnClose(t *testing.T) {
	col := &fakeCollection{}
	disconnected := false
	h := newMongoHandler(col, func(context.Context) error {
		disconnected = true
		return nil
	})

	log := slog.New(h).With("component", "patcher")
	for i := 0; i < 120; i++ {
		log.Info("record patched", "index", i)
	}
	log.WithGroup("run").Warn("done", "records", 120)

	h.Close()
	h.Close()

	col.mu.Lock()
	defer col.mu.Unlock()
	require.Len(t, col.docs, 121)
	assert.True(t, disconnected)

	first := col.docs[0]
	assert.Equal(t, "patcher", first.Component)
	assert.Equal(t, "INFO", first.Level)
	assert.EqualValues(t, 0, first.Attrs["index"])

	last := col.docs[120]
	assert.Equal(t, "WARN", last.Level)
	assert.EqualValues(t, 120, last.Attrs["run.records"])
}

func TestMultiHandlerFansOut(t *testing.T) {
	var a, b bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	log := slog.New(h).With("component", "seed")

	log.Info("batch inserted")
	assert.Contains(t, a.String(), "batch inserted")
	assert.Contains(t, a.String(), "component=seed")
	assert.Empty(t, b.String())

	log.Error("insert failed")
	assert.Contains(t, b.String(), "insert failed")
}

func TestComponentTagsLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	L = slog.New(slog.NewTextHandler(&buf, nil))
	defer func() { L = prev }()

	Component("generator").Info("records generated")
	assert.Contains(t, buf.String(), "component=generator")
}
