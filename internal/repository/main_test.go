//go:build integration
// +build integration

package repository

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"photostudio-backend/internal/database"
	"photostudio-backend/internal/testutils"
)

// TestMain switches the repository suites to a dockerized Postgres and ensures
// the container is removed afterwards
func TestMain(m *testing.M) {
	os.Setenv(testutils.DriverEnv, database.DriverPostgres)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Repository tests interrupted, cleaning up Docker containers...")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	log.Println("Starting repository integration tests against Postgres...")
	code := m.Run()

	testutils.CleanupSharedContainer()
	os.Exit(code)
}
