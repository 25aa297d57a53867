package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Dumstain/GPSBackendFarmacia/internal/application/auth"
	"github.com/Dumstain/GPSBackendFarmacia/internal/application/dto"
	"github.com/Dumstain/GPSBackendFarmacia/internal/application/usecase"
	"github.com/Dumstain/GPSBackendFarmacia/internal/domain"
	"github.com/Dumstain/GPSBackendFarmacia/internal/domain/entity"
)

// fakeUserRepo repositorio en memoria.
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

func seedUser(t *testing.T, repo *fakeUserRepo, email, username string) int64 {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("original123"), bcrypt.MinCost)
	require.NoError(t, err)
	id, err := repo.Create(&entity.User{
		Name:         "Luis",
		Surname:      "Pérez",
		Phone:        "5598765432",
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		Avatar:       "Avatar 3",
		Role:         entity.RoleCustomer,
	})
	require.NoError(t, err)
	return id
}

// ──────────────────────────────────────────────────────────────────────────────
// Update — semántica de merge
// ──────────────────────────────────────────────────────────────────────────────

// Los campos omitidos conservan su valor previo; solo lo enviado sobrescribe.
func TestUpdateUser_MergeConservaCamposOmitidos(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, "Avatar 1")
	id := seedUser(t, repo, "luis@farmacia.mx", "luisp")

	err := uc.Update(id, dto.UpdateUserRequest{Phone: "5511112222"})
	require.NoError(t, err)

	saved := repo.users[id]
	assert.Equal(t, "5511112222", saved.Phone)
	assert.Equal(t, "Luis", saved.Name, "nombre omitido se conserva")
	assert.Equal(t, "luis@farmacia.mx", saved.Email, "email omitido se conserva")
	assert.Equal(t, "Avatar 3", saved.Avatar, "avatar omitido se conserva")
}

// Sin password en la petición, el hash existente se mantiene intacto.
func TestUpdateUser_SinPasswordConservaHash(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, "Avatar 1")
	id := seedUser(t, repo, "luis@farmacia.mx", "luisp")
	hashBefore := repo.users[id].PasswordHash

	require.NoError(t, uc.Update(id, dto.UpdateUserRequest{Name: "Luis Alberto"}))
	assert.Equal(t, hashBefore, repo.users[id].PasswordHash)
}

func TestUpdateUser_ConPasswordRehashea(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, "Avatar 1")
	id := seedUser(t, repo, "luis@farmacia.mx", "luisp")
	hashBefore := repo.users[id].PasswordHash

	require.NoError(t, uc.Update(id, dto.UpdateUserRequest{Password: "nueva456"}))

	saved := repo.users[id]
	assert.NotEqual(t, hashBefore, saved.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("nueva456")))
}

// Cambiar el email a uno ocupado por OTRO usuario falla; repetir el propio no.
func TestUpdateUser_EmailOcupadoPorOtro(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, "Avatar 1")
	id := seedUser(t, repo, "luis@farmacia.mx", "luisp")
	seedUser(t, repo, "marta@farmacia.mx", "martag")

	err := uc.Update(id, dto.UpdateUserRequest{Email: "marta@farmacia.mx"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

	// El propio email no cuenta como colisión
	assert.NoError(t, uc.Update(id, dto.UpdateUserRequest{Email: "luis@farmacia.mx"}))
}

func TestUpdateUser_UsernameOcupadoPorOtro(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, "Avatar 1")
	id := seedUser(t, repo, "luis@farmacia.mx", "luisp")
	seedUser(t, repo, "marta@farmacia.mx", "martag")

	err := uc.Update(id, dto.UpdateUserRequest{Username: "martag"})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

// Tras cambiar el email, la sesión se abre con el email nuevo y la contraseña
// previa; el email anterior deja de autenticar.
func TestUpdateUser_CambioDeEmail_LoginRoundTrip(t *testing.T) {
	repo := newFakeUserRepo()
	userUC := usecase.NewUserUseCase(repo, "Avatar 1")
	authUC := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "farmacia-test",
	}, "Avatar 1")

	id, err := authUC.Register(dto.RegisterRequest{
		Name:     "Luis",
		Surname:  "Pérez",
		Email:    "luis@farmacia.mx",
		Password: "original123",
		Role:     entity.RoleCustomer,
	})
	require.NoError(t, err)

	require.NoError(t, userUC.Update(id, dto.UpdateUserRequest{Email: "luis.nuevo@farmacia.mx"}))

	out, err := authUC.Login(dto.LoginRequest{Email: "luis.nuevo@farmacia.mx", Password: "original123"})
	require.NoError(t, err, "el email nuevo autentica con la contraseña previa")
	assert.Equal(t, id, out.User.ID)
	assert.Equal(t, "luis.nuevo@farmacia.mx", out.User.Email)

	_, err = authUC.Login(dto.LoginRequest{Email: "luis@farmacia.mx", Password: "original123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials, "el email anterior deja de autenticar")
}

func TestUpdateUser_AvatarInvalido(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, "Avatar 1")
	id := seedUser(t, repo, "luis@farmacia.mx", "luisp")

	err := uc.Update(id, dto.UpdateUserRequest{Avatar: "Avatar 99"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "Avatar 3", repo.users[id].Avatar, "el avatar previo se conserva")
}

func TestUpdateUser_RolInvalido(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, "Avatar 1")
	id := seedUser(t, repo, "luis@farmacia.mx", "luisp")

	err := uc.Update(id, dto.UpdateUserRequest{Role: "ROOT"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateUser_NoExiste(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, "Avatar 1")

	err := uc.Update(999, dto.UpdateUserRequest{Name: "Nadie"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// List / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestListAdmins_FiltraPorRol(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, "Avatar 1")
	seedUser(t, repo, "cliente@farmacia.mx", "cliente1")

	adminID := seedUser(t, repo, "admin@farmacia.mx", "admin1")
	repo.users[adminID].Role = entity.RoleAdministrator

	admins, err := uc.ListAdmins()
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, adminID, admins[0].ID)
	assert.Equal(t, entity.RoleAdministrator, admins[0].Role)
}

func TestDeleteUser_NoExiste(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, "Avatar 1")

	assert.ErrorIs(t, uc.Delete(999), domain.ErrNotFound)
}
