package auth_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tiendashellx/pos-api/internal/application/auth"
	"github.com/tiendashellx/pos-api/internal/application/dto"
	"github.com/tiendashellx/pos-api/internal/domain"
	"github.com/tiendashellx/pos-api/internal/domain/entity"
	"github.com/tiendashellx/pos-api/internal/domain/repository"
	"github.com/tiendashellx/pos-api/pkg/session"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User // key: username en minúsculas
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	key := strings.ToLower(u.Username)
	if _, exists := f.users[key]; exists {
		return domain.ErrUsernameTaken
	}
	f.users[key] = u
	return nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	return f.users[strings.ToLower(username)], nil
}

type fakeCodeRepo struct {
	codes map[string]bool // code -> usado
}

func (f *fakeCodeRepo) Consume(code, usedBy string) (bool, error) {
	used, exists := f.codes[strings.ToUpper(code)]
	if !exists || used {
		return false, nil
	}
	f.codes[strings.ToUpper(code)] = true
	return true, nil
}
func (f *fakeCodeRepo) EnsureDefaults(codes []string) error { return nil }
func (f *fakeCodeRepo) Count() (int64, error)               { return int64(len(f.codes)), nil }

// fakeTxRunner ejecuta fn con los fakes; si falla, deshace el alta de usuario
// y el consumo del código, imitando el rollback.
type fakeTxRunner struct {
	userRepo *fakeUserRepo
	codeRepo *fakeCodeRepo
}

func (r *fakeTxRunner) RunRegistration(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	codeRepo repository.ActivationCodeRepository,
) error) error {
	usersBefore := make(map[string]*entity.User, len(r.userRepo.users))
	for k, v := range r.userRepo.users {
		usersBefore[k] = v
	}
	codesBefore := make(map[string]bool, len(r.codeRepo.codes))
	for k, v := range r.codeRepo.codes {
		codesBefore[k] = v
	}
	if err := fn(r.userRepo, r.codeRepo); err != nil {
		r.userRepo.users = usersBefore
		r.codeRepo.codes = codesBefore
		return err
	}
	return nil
}

type fakeProvisioner struct {
	seeded []string
}

func (f *fakeProvisioner) Seed(ctx context.Context, tenantID string) error {
	f.seeded = append(f.seeded, tenantID)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	users       *fakeUserRepo
	codes       *fakeCodeRepo
	provisioner *fakeProvisioner
	uc          *auth.AuthUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		users:       &fakeUserRepo{users: map[string]*entity.User{}},
		codes:       &fakeCodeRepo{codes: map[string]bool{"DEMO2024": false}},
		provisioner: &fakeProvisioner{},
	}
	runner := &fakeTxRunner{userRepo: f.users, codeRepo: f.codes}
	f.uc = auth.NewAuthUseCase(f.users, runner, f.provisioner, auth.SessionConfig{
		Secret:   "test-secret",
		Issuer:   "tienda-pos-test",
		ExpHours: 24,
	})
	return f
}

func validRegister() dto.RegisterRequest {
	return dto.RegisterRequest{
		Username:        "Maria Lopez",
		Password:        "secreto123",
		PasswordConfirm: "secreto123",
		Email:           "maria@example.com",
		ActivationCode:  "demo2024",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

// Registro válido: crea la cuenta con su tenant, consume el código (case
// insensitive) y dispara la siembra del tenant.
func TestRegister_CreaCuentaYConsumeCodigo(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.uc.Register(context.Background(), validRegister()))

	user := f.users.users["maria lopez"]
	require.NotNil(t, user, "el usuario debe quedar persistido")
	assert.NotEmpty(t, user.TenantID)
	assert.Equal(t, "tienda_maria_lopez", user.StoreName,
		"el nombre de tienda se deriva del username")
	assert.True(t, user.Active)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secreto123")),
		"la contraseña se guarda hasheada con bcrypt")

	assert.True(t, f.codes.codes["DEMO2024"], "el código debe quedar consumido")
	assert.Equal(t, []string{user.TenantID}, f.provisioner.seeded,
		"la siembra del tenant debe ejecutarse tras el registro")
}

// El código de activación es de un solo uso: el segundo registro con el
// mismo código falla y no crea cuenta.
func TestRegister_CodigoDeUnSoloUso(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.uc.Register(context.Background(), validRegister()))

	in := validRegister()
	in.Username = "otro_usuario"
	err := f.uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidActivationCode)
	assert.Nil(t, f.users.users["otro_usuario"], "no debe quedar cuenta a medias")
	assert.Len(t, f.provisioner.seeded, 1)
}

// Username duplicado (case insensitive) → conflicto.
func TestRegister_UsernameDuplicado(t *testing.T) {
	f := newFixture(t)
	f.codes.codes["ACT001"] = false
	require.NoError(t, f.uc.Register(context.Background(), validRegister()))

	in := validRegister()
	in.Username = "MARIA LOPEZ"
	in.ActivationCode = "ACT001"
	err := f.uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	assert.False(t, f.codes.codes["ACT001"],
		"el código no debe consumirse si el registro falla")
}

// Validaciones de entrada: campos vacíos, contraseñas distintas, contraseña corta.
func TestRegister_Validaciones(t *testing.T) {
	f := newFixture(t)

	in := validRegister()
	in.PasswordConfirm = "otra"
	assert.ErrorIs(t, f.uc.Register(context.Background(), in), domain.ErrInvalidInput)

	in = validRegister()
	in.Password = "12345"
	in.PasswordConfirm = "12345"
	assert.ErrorIs(t, f.uc.Register(context.Background(), in), domain.ErrInvalidInput,
		"contraseña de menos de 6 caracteres")

	in = validRegister()
	in.Email = ""
	assert.ErrorIs(t, f.uc.Register(context.Background(), in), domain.ErrInvalidInput)

	in = validRegister()
	in.ActivationCode = ""
	assert.ErrorIs(t, f.uc.Register(context.Background(), in), domain.ErrInvalidInput)

	assert.Empty(t, f.users.users)
}

// StoreNameFor normaliza espacios y mayúsculas.
func TestStoreNameFor(t *testing.T) {
	assert.Equal(t, "tienda_maria", auth.StoreNameFor("Maria"))
	assert.Equal(t, "tienda_juan_perez", auth.StoreNameFor("  Juan   Perez "))
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

// Login correcto emite un token de sesión que porta el tenant del usuario.
func TestLogin_EmiteSesionConTenant(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.uc.Register(context.Background(), validRegister()))
	tenantID := f.users.users["maria lopez"].TenantID

	result, err := f.uc.Login(dto.LoginRequest{Username: "maria lopez", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, "tienda_maria_lopez", result.Session.StoreName)

	payload, err := session.Parse("test-secret", result.Token)
	require.NoError(t, err)
	assert.Equal(t, tenantID, payload.TenantID,
		"el token debe portar el tenant para particionar los datos")
}

// Credenciales incorrectas: mismo trato para usuario inexistente y password mala.
func TestLogin_CredencialesIncorrectas(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.uc.Register(context.Background(), validRegister()))

	_, err := f.uc.Login(dto.LoginRequest{Username: "noexiste", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = f.uc.Login(dto.LoginRequest{Username: "maria lopez", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.uc.Login(dto.LoginRequest{Username: "", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Cuenta desactivada no puede iniciar sesión aunque la password sea correcta.
func TestLogin_CuentaInactiva(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.uc.Register(context.Background(), validRegister()))
	f.users.users["maria lopez"].Active = false

	_, err := f.uc.Login(dto.LoginRequest{Username: "maria lopez", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
