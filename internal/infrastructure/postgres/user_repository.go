package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dumstain/GPSBackendFarmacia/internal/domain"
	"github.com/Dumstain/GPSBackendFarmacia/internal/domain/entity"
	"github.com/Dumstain/GPSBackendFarmacia/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, name, surname, COALESCE(phone, ''), email, COALESCE(address, ''),
	COALESCE(username, ''), password_hash, avatar, role, created_at, updated_at`

// Create persiste un nuevo usuario y devuelve el id generado.
func (r *UserRepo) Create(user *entity.User) (int64, error) {
	query := `
		INSERT INTO users (name, surname, phone, email, address, username, password_hash, avatar, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		user.Name, user.Surname, nullIfEmpty(user.Phone), user.Email, nullIfEmpty(user.Address),
		nullIfEmpty(user.Username), user.PasswordHash, user.Avatar, user.Role,
		user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			// email y username comparten el código 23505; distinguir por constraint
			if strings.Contains(err.Error(), "username") {
				return 0, domain.ErrDuplicateUsername
			}
			return 0, domain.ErrDuplicateEmail
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return user.ID, nil
}

// GetByID obtiene un usuario por id; (nil, nil) si no existe.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email; (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE email = $1 LIMIT 1`, email)
}

// GetByUsername obtiene un usuario por nombre de usuario; (nil, nil) si no existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE username = $1 LIMIT 1`, username)
}

func (r *UserRepo) getOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Name, &u.Surname, &u.Phone, &u.Email, &u.Address,
		&u.Username, &u.PasswordHash, &u.Avatar, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// List devuelve todos los usuarios.
func (r *UserRepo) List() ([]*entity.User, error) {
	return r.list(`SELECT ` + userColumns + ` FROM users ORDER BY id`)
}

// ListAdmins devuelve los usuarios con rol ADMINISTRATOR.
func (r *UserRepo) ListAdmins() ([]*entity.User, error) {
	return r.list(`SELECT ` + userColumns + ` FROM users WHERE role = 'ADMINISTRATOR' ORDER BY id`)
}

func (r *UserRepo) list(query string) ([]*entity.User, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Surname, &u.Phone, &u.Email, &u.Address,
			&u.Username, &u.PasswordHash, &u.Avatar, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update sobrescribe todos los campos del usuario (el merge se hace en el use case).
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users
		SET name = $2, surname = $3, phone = $4, email = $5, address = $6,
		    username = $7, password_hash = $8, avatar = $9, role = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Name, user.Surname, nullIfEmpty(user.Phone), user.Email, nullIfEmpty(user.Address),
		nullIfEmpty(user.Username), user.PasswordHash, user.Avatar, user.Role, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			if strings.Contains(err.Error(), "username") {
				return domain.ErrDuplicateUsername
			}
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete elimina un usuario por id. Las ventas que lo referencien quedan huérfanas.
func (r *UserRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
