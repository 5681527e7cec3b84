package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewSnapshotRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewSnapshotRepository(pool)
	assert.NotNil(t, repo)
}
