package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tiendashellx/pos-api/internal/application/dto"
	"github.com/tiendashellx/pos-api/internal/domain"
	"github.com/tiendashellx/pos-api/internal/domain/entity"
	"github.com/tiendashellx/pos-api/internal/domain/repository"
	"github.com/tiendashellx/pos-api/pkg/session"
	"golang.org/x/crypto/bcrypt"
)

// TxRunner ejecuta el alta de usuario y el consumo del código de activación
// en una sola transacción.
type TxRunner interface {
	RunRegistration(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		codeRepo repository.ActivationCodeRepository,
	) error) error
}

// Provisioner siembra los datos iniciales del tenant tras el registro.
type Provisioner interface {
	Seed(ctx context.Context, tenantID string) error
}

// SessionConfig parámetros para emitir el token de sesión.
type SessionConfig struct {
	Secret   string
	Issuer   string
	ExpHours int
}

// AuthUseCase registro y login de cuentas de tienda.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	txRunner    TxRunner
	provisioner Provisioner
	sessionCfg  SessionConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, txRunner TxRunner, provisioner Provisioner, sessionCfg SessionConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, txRunner: txRunner, provisioner: provisioner, sessionCfg: sessionCfg}
}

// StoreNameFor deriva el nombre del almacén del tenant a partir del username:
// tienda_<usuario> en minúsculas, espacios reemplazados por guion bajo.
func StoreNameFor(username string) string {
	name := strings.ToLower(strings.TrimSpace(username))
	name = strings.Join(strings.Fields(name), "_")
	return "tienda_" + name
}

// Register valida la solicitud, consume el código de activación de un solo
// uso y crea la cuenta con su tenant (transaccional); después siembra los
// datos iniciales del tenant (idempotente).
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) error {
	if in.Username == "" || in.Password == "" || in.PasswordConfirm == "" || in.Email == "" || in.ActivationCode == "" {
		return domain.ErrInvalidInput
	}
	if in.Password != in.PasswordConfirm {
		return domain.ErrInvalidInput
	}
	if len(in.Password) < 6 {
		return domain.ErrInvalidInput
	}

	existing, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), 12)
	if err != nil {
		return err
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Email:        in.Email,
		Phone:        in.Phone,
		TenantID:     uuid.New().String(),
		StoreName:    StoreNameFor(in.Username),
		Active:       true,
		CreatedAt:    time.Now(),
	}

	code := strings.ToUpper(strings.TrimSpace(in.ActivationCode))
	err = uc.txRunner.RunRegistration(ctx, func(
		userRepo repository.UserRepository,
		codeRepo repository.ActivationCodeRepository,
	) error {
		consumed, err := codeRepo.Consume(code, user.Username)
		if err != nil {
			return err
		}
		if !consumed {
			return domain.ErrInvalidActivationCode
		}
		return userRepo.Create(user)
	})
	if err != nil {
		return err
	}

	// Siembra fuera de la transacción de registro: es idempotente por
	// colección, reintentarla no duplica datos.
	return uc.provisioner.Seed(ctx, user.TenantID)
}

// Login verifica username/password y emite el token de sesión firmado.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResult, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}
	token, err := session.Generate(uc.sessionCfg.Secret, uc.sessionCfg.Issuer, uc.sessionCfg.ExpHours, session.Payload{
		Username:  user.Username,
		TenantID:  user.TenantID,
		StoreName: user.StoreName,
		Email:     user.Email,
	})
	if err != nil {
		return nil, err
	}
	return &dto.LoginResult{
		Token: token,
		Session: dto.SessionResponse{
			Username:  user.Username,
			StoreName: user.StoreName,
			Email:     user.Email,
		},
	}, nil
}
