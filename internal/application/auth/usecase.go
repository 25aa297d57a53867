package auth

import (
	"time"

	"github.com/Dumstain/GPSBackendFarmacia/internal/application/dto"
	"github.com/Dumstain/GPSBackendFarmacia/internal/domain"
	"github.com/Dumstain/GPSBackendFarmacia/internal/domain/entity"
	"github.com/Dumstain/GPSBackendFarmacia/internal/domain/repository"
	"github.com/Dumstain/GPSBackendFarmacia/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para la emisión de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de credenciales: registro e inicio de sesión.
type AuthUseCase struct {
	userRepo      repository.UserRepository
	jwtCfg        JWTConfig
	defaultAvatar string
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, defaultAvatar string) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, defaultAvatar: defaultAvatar}
}

// Register crea un usuario: verifica unicidad de email y username, hashea la
// contraseña con bcrypt y persiste. No emite token. Devuelve el id generado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (int64, error) {
	if !entity.ValidRole(in.Role) {
		return 0, domain.ErrInvalidInput
	}
	if in.Avatar != "" && !entity.ValidAvatar(in.Avatar) {
		return 0, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, domain.ErrDuplicateEmail
	}
	if in.Username != "" {
		taken, err := uc.userRepo.GetByUsername(in.Username)
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
	user := &entity.User{
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
	}
	return uc.userRepo.Create(user)
}

// Login verifica email/password y emite el token de sesión.
// Email inexistente y contraseña incorrecta devuelven el mismo error para no
// filtrar qué cuentas existen. La comparación bcrypt es de tiempo constante.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes,
		user.ID, user.DisplayName(), user.Avatar, user.Role)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:     user.ID,
			Name:   user.DisplayName(),
			Avatar: user.Avatar,
			Role:   user.Role,
			Email:  user.Email,
		},
	}, nil
}
