package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invayl-academya/Ai-chatbot/internal/models"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func (r *UserRepo) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email, username, hashed_password, is_active, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	user.IsActive = true

	return r.pool.QueryRow(ctx, query,
		user.Name, user.Email, user.Username, user.HashedPassword, user.IsActive, user.Role,
	).Scan(&user.ID, &user.CreatedAt)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, name, email, username, hashed_password, is_active, role, created_at
		FROM users WHERE email = $1`

	err := r.pool.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.Username, &user.HashedPassword,
		&user.IsActive, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, name, email, username, hashed_password, is_active, role, created_at
		FROM users WHERE username = $1`

	err := r.pool.QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Name, &user.Email, &user.Username, &user.HashedPassword,
		&user.IsActive, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, name, email, username, hashed_password, is_active, role, created_at
		FROM users WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.Username, &user.HashedPassword,
		&user.IsActive, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	query := `SELECT id, name, email, username, hashed_password, is_active, role, created_at
		FROM users ORDER BY id ASC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if scanErr := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.Username, &user.HashedPassword,
			&user.IsActive, &user.Role, &user.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		users = append(users, user)
	}

	return users, rows.Err()
}
