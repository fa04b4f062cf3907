package main

import (
	"context"
	"testing"
	"time"

	"photostudio-backend/internal/config"
	"photostudio-backend/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeStopsOnCancel(t *testing.T) {
	cfg := &config.Config{
		Environment:    "test",
		Port:           "0",
		DatabaseDriver: database.DriverSQLite,
		SQLitePath:     "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		JWTSecret:      "test-secret",
		GalleryBaseURL: "https://photos.example.com",
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, cfg) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("server did not shut down")
	}
}

func TestServeFailsOnUnknownDriver(t *testing.T) {
	cfg := &config.Config{DatabaseDriver: "oracle", Port: "0"}

	err := serve(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "initialize database")
}
