package repository

import "github.com/Dumstain/GPSBackendFarmacia/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando no existe fila.
type UserRepository interface {
	Create(user *entity.User) (int64, error)
	GetByID(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	List() ([]*entity.User, error)
	ListAdmins() ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id int64) error
}
