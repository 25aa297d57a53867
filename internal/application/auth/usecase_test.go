package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dumstain/GPSBackendFarmacia/internal/application/auth"
	"github.com/Dumstain/GPSBackendFarmacia/internal/application/dto"
	"github.com/Dumstain/GPSBackendFarmacia/internal/domain"
	"github.com/Dumstain/GPSBackendFarmacia/internal/domain/entity"
)

// fakeUserRepo repositorio de usuarios en memoria para los tests.
type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*entity.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(u *entity.User) (int64, error) {
	u.ID = r.nextID
	r.nextID++
	cp := *u
	r.users[u.ID] = &cp
	return u.ID, nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) ListAdmins() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.Role == entity.RoleAdministrator {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(id int64) error {
	delete(r.users, id)
	return nil
}

func testAuthUC(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "farmacia-test",
	}, "Avatar 1")
}

func registerInput() dto.RegisterRequest {
	return dto.RegisterRequest{
		Name:     "Ana",
		Surname:  "García",
		Phone:    "5512345678",
		Email:    "ana@farmacia.mx",
		Password: "secreta123",
		Role:     entity.RoleAdministrator,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioConHashYAvatarPorDefecto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := testAuthUC(repo)

	id, err := uc.Register(registerInput())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	saved := repo.users[id]
	require.NotNil(t, saved)
	assert.NotEqual(t, "secreta123", saved.PasswordHash,
		"la contraseña nunca se guarda en claro")
	assert.Equal(t, "Avatar 1", saved.Avatar, "sin avatar en el registro se asigna el por defecto")
	assert.Equal(t, entity.RoleAdministrator, saved.Role)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := testAuthUC(repo)

	_, err := uc.Register(registerInput())
	require.NoError(t, err)

	in := registerInput()
	in.Username = "otro-usuario"
	_, err = uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := testAuthUC(repo)

	in := registerInput()
	in.Username = "anag"
	_, err := uc.Register(in)
	require.NoError(t, err)

	in2 := registerInput()
	in2.Email = "otra@farmacia.mx"
	in2.Username = "anag"
	_, err = uc.Register(in2)
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestRegister_AvatarInvalido(t *testing.T) {
	repo := newFakeUserRepo()
	uc := testAuthUC(repo)

	in := registerInput()
	in.Avatar = "Avatar 99"
	_, err := uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_RolInvalido(t *testing.T) {
	repo := newFakeUserRepo()
	uc := testAuthUC(repo)

	in := registerInput()
	in.Role = "SUPERUSER"
	_, err := uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_RoundTrip(t *testing.T) {
	repo := newFakeUserRepo()
	uc := testAuthUC(repo)

	id, err := uc.Register(registerInput())
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@farmacia.mx", Password: "secreta123"})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, id, out.User.ID)
	assert.Equal(t, "Ana García", out.User.Name, "el name del payload es nombre + apellido")
	assert.Equal(t, "Avatar 1", out.User.Avatar)
	assert.Equal(t, entity.RoleAdministrator, out.User.Role)
	assert.Equal(t, "ana@farmacia.mx", out.User.Email)
}

// Email inexistente y contraseña incorrecta responden el MISMO error:
// no se filtra qué cuentas existen.
func TestLogin_EmailInexistente(t *testing.T) {
	repo := newFakeUserRepo()
	uc := testAuthUC(repo)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@farmacia.mx", Password: "loquesea"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	repo := newFakeUserRepo()
	uc := testAuthUC(repo)

	_, err := uc.Register(registerInput())
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@farmacia.mx", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
