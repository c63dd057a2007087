package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Aaronzito/api-web-encontrarte/internal/domain/entity"
	"github.com/Aaronzito/api-web-encontrarte/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (usr_role, name, lastname, email, password, address, city, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, u.Role, u.Name, u.Lastname, u.Email, u.Password, u.Address, u.City, u.Phone)

	return row.Scan(&u.ID)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.get(ctx, `
		SELECT id, usr_role, name, lastname, email, password, address, city, phone, image
		FROM users
		WHERE id = $1
	`, id)
}

// GetByEmail takes the first match; emails are not unique in this schema.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.get(ctx, `
		SELECT id, usr_role, name, lastname, email, password, address, city, phone, image
		FROM users
		WHERE email = $1
		ORDER BY id
		LIMIT 1
	`, email)
}

func (r *UserRepository) get(ctx context.Context, query string, arg any) (*entity.User, error) {
	u := &entity.User{}
	row := r.pool.QueryRow(ctx, query, arg)
	if err := row.Scan(&u.ID, &u.Role, &u.Name, &u.Lastname, &u.Email, &u.Password,
		&u.Address, &u.City, &u.Phone, &u.Image); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) UpdateImage(ctx context.Context, id int64, image []byte) (int64, error) {
	res, err := r.pool.Exec(ctx, `UPDATE users SET image = $1 WHERE id = $2`, image, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
