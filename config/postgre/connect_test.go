package postgre

import (
	"context"
	"testing"

	"diagnosis-srv/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	got := dsn(config.PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "diagnosis"})
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=diagnosis sslmode=disable search_path=public", got)

	got = dsn(config.PostgresConfig{Host: "db", Port: 5433, User: "u", DBName: "d", SSLMode: "require", Schema: "clinic"})
	assert.Contains(t, got, "sslmode=require")
	assert.Contains(t, got, "search_path=clinic")
}

func TestHealthCheckNotConnected(t *testing.T) {
	assert.EqualError(t, HealthCheck(context.Background()), "PostgreSQL client not initialized")
}
