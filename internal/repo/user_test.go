package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psharda/fieldforce/backend/internal/domain"
	"github.com/psharda/fieldforce/backend/internal/repo"
)

func TestUserRepo_GetByEmail(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewUserRepo(tx)
	ctx := context.Background()

	region := "Jharkhand"
	var id int64
	err := tx.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, role, region)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		"Priya Sharma", "priya@example.com", "hash-value", "salesperson", region,
	).Scan(&id)
	require.NoError(t, err)

	got, err := r.GetByEmail(ctx, "priya@example.com")

	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Priya Sharma", got.Name)
	assert.Equal(t, "hash-value", got.PasswordHash)
	assert.Equal(t, "salesperson", got.Role)
	require.NotNil(t, got.Region)
	assert.Equal(t, region, *got.Region)
	assert.Nil(t, got.Area)
}

func TestUserRepo_GetByEmail_NotFound(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewUserRepo(tx)

	_, err := r.GetByEmail(context.Background(), "nobody@example.com")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
