package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/psharda/fieldforce/backend/internal/domain"
)

// UserRepo defines the persistence operations for user accounts.
// Account provisioning happens out-of-band; the API only reads users.
type UserRepo interface {
	// GetByEmail retrieves a user by email address.
	// Returns domain.ErrNotFound if no user with that email exists.
	GetByEmail(ctx context.Context, email string) (domain.User, error)
}

type pgUserRepo struct {
	db db
}

// NewUserRepo constructs a UserRepo backed by the provided db connection.
func NewUserRepo(db db) UserRepo {
	return &pgUserRepo{db: db}
}

func (r *pgUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	const q = `
		SELECT id, name, email, password_hash, role, region, area, created_at
		FROM users
		WHERE email = @email`

	var u domain.User
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"email": email}).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Region, &u.Area, &u.CreatedAt,
	)
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByEmail: %w", mapPgError(err))
	}
	return u, nil
}
