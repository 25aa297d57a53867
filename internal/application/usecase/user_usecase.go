package usecase

import (
	"time"

	"github.com/Dumstain/GPSBackendFarmacia/internal/application/dto"
	"github.com/Dumstain/GPSBackendFarmacia/internal/domain"
	"github.com/Dumstain/GPSBackendFarmacia/internal/domain/entity"
	"github.com/Dumstain/GPSBackendFarmacia/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase CRUD de usuarios. El registro con emisión de credenciales vive en auth.
type UserUseCase struct {
	repo          repository.UserRepository
	defaultAvatar string
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, defaultAvatar string) *UserUseCase {
	return &UserUseCase{repo: repo, defaultAvatar: defaultAvatar}
}

// List devuelve todos los usuarios.
func (uc *UserUseCase) List() ([]dto.UserDetailResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toUserDetailList(users), nil
}

// ListAdmins devuelve los usuarios con rol ADMINISTRATOR.
func (uc *UserUseCase) ListAdmins() ([]dto.UserDetailResponse, error) {
	users, err := uc.repo.ListAdmins()
	if err != nil {
		return nil, err
	}
	return toUserDetailList(users), nil
}

// GetByID devuelve un usuario; (nil, nil) si no existe.
func (uc *UserUseCase) GetByID(id int64) (*dto.UserDetailResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	out := toUserDetail(user)
	return &out, nil
}

// Create crea un usuario directamente (mismas reglas de unicidad que el registro).
func (uc *UserUseCase) Create(in dto.RegisterRequest) (int64, error) {
	if in.Email == "" || in.Password == "" || !entity.ValidRole(in.Role) {
		return 0, domain.ErrInvalidInput
	}
	if in.Avatar != "" && !entity.ValidAvatar(in.Avatar) {
		return 0, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, domain.ErrDuplicateEmail
	}
	if in.Username != "" {
		taken, err := uc.repo.GetByUsername(in.Username)
		if err != nil {
			return 0, err
		}
		if taken != nil {
			return 0, domain.ErrDuplicateUsername
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	avatar := in.Avatar
	if avatar == "" {
		avatar = uc.defaultAvatar
	}
	now := time.Now()
	return uc.repo.Create(&entity.User{
		Name:         in.Name,
		Surname:      in.Surname,
		Phone:        in.Phone,
		Email:        in.Email,
		Address:      in.Address,
		Username:     in.Username,
		PasswordHash: string(hash),
		Avatar:       avatar,
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// Update aplica un merge sobre el registro existente: los campos vacíos
// conservan su valor. Si cambian email o username se re-verifica la unicidad
// contra OTROS usuarios; si llega password se re-hashea, si no se conserva el hash.
func (uc *UserUseCase) Update(id int64, in dto.UpdateUserRequest) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}

	if in.Email != "" && in.Email != user.Email {
		other, err := uc.repo.GetByEmail(in.Email)
		if err != nil {
			return err
		}
		if other != nil {
			return domain.ErrDuplicateEmail
		}
		user.Email = in.Email
	}
	if in.Username != "" && in.Username != user.Username {
		other, err := uc.repo.GetByUsername(in.Username)
		if err != nil {
			return err
		}
		if other != nil {
			return domain.ErrDuplicateUsername
		}
		user.Username = in.Username
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hash)
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Surname != "" {
		user.Surname = in.Surname
	}
	if in.Phone != "" {
		user.Phone = in.Phone
	}
	if in.Address != "" {
		user.Address = in.Address
	}
	if in.Avatar != "" {
		if !entity.ValidAvatar(in.Avatar) {
			return domain.ErrInvalidInput
		}
		user.Avatar = in.Avatar
	}
	if in.Role != "" {
		if !entity.ValidRole(in.Role) {
			return domain.ErrInvalidInput
		}
		user.Role = in.Role
	}
	user.UpdatedAt = time.Now()
	return uc.repo.Update(user)
}

// Delete elimina un usuario por id. Sin cascada sobre sus ventas.
func (uc *UserUseCase) Delete(id int64) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toUserDetail(u *entity.User) dto.UserDetailResponse {
	return dto.UserDetailResponse{
		ID:       u.ID,
		Name:     u.Name,
		Surname:  u.Surname,
		Phone:    u.Phone,
		Email:    u.Email,
		Address:  u.Address,
		Username: u.Username,
		Avatar:   u.Avatar,
		Role:     u.Role,
	}
}

func toUserDetailList(users []*entity.User) []dto.UserDetailResponse {
	out := make([]dto.UserDetailResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserDetail(u))
	}
	return out
}
