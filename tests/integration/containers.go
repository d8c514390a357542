package integration

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// InitPostgresContainer starts a throwaway Postgres instance for the test
// run and points the DB_HOST/DB_PORT config at its mapped address.
type InitPostgresContainer struct {
	container *postgres.PostgresContainer
}

func (i *InitPostgresContainer) Initialize(ctx context.Context) (context.Context, error) {
	pc, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("staffcastdb"),
		postgres.WithUsername("staffcast"),
		postgres.WithPassword("staffcast"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2*time.Minute),
		),
	)
	if err != nil {
		return ctx, err
	}
	i.container = pc

	host, err := pc.Host(ctx)
	if err != nil {
		return ctx, err
	}
	port, err := pc.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return ctx, err
	}

	os.Setenv("DB_HOST", host)        //nolint:errcheck
	os.Setenv("DB_PORT", port.Port()) //nolint:errcheck
	return ctx, nil
}

func (i *InitPostgresContainer) Close() {
	if i.container != nil {
		cancelCtx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		if err := i.container.Terminate(cancelCtx); err != nil {
			log.Printf("failed to terminate postgres container: %v", err)
		}
	}
}
