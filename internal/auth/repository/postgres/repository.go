package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/patrykJ113/edicom-api/internal/auth/domain"
	autherror "github.com/patrykJ113/edicom-api/internal/errors"
)

// DBTX is the subset of *pgxpool.Pool the repository needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DBTX
}

var _ domain.UserRepository = (*PostgresRepository)(nil)

func NewPostgresRepository(db DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, name, password_hash, COALESCE(refresh_token, ''), created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1;
	`
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// GetByIDAndRefreshToken matches both the id and the stored refresh token in a
// single lookup. A superseded token yields (nil, nil), same as an unknown id.
func (r *PostgresRepository) GetByIDAndRefreshToken(ctx context.Context, id, refreshToken string) (*domain.User, error) {
	query := `
		SELECT id, email, name, password_hash, COALESCE(refresh_token, ''), created_at, updated_at
		FROM users
		WHERE id = $1 AND refresh_token = $2
		LIMIT 1;
	`
	user, err := scanUser(r.db.QueryRow(ctx, query, id, refreshToken))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by refresh token: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return autherror.ErrEmailAlreadyInUse
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// UpdateRefreshToken overwrites the stored refresh token. Concurrent writers
// for the same user resolve last-writer-wins.
func (r *PostgresRepository) UpdateRefreshToken(ctx context.Context, userID, refreshToken string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET refresh_token = $2, updated_at = now()
		WHERE id = $1
	`, userID, refreshToken)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to update refresh token: user %s not found", userID)
	}

	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.RefreshToken, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}
