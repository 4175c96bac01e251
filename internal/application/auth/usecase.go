package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/asset-balance-api/internal/application/dto"
	"github.com/jhoicas/asset-balance-api/internal/domain"
	"github.com/jhoicas/asset-balance-api/internal/domain/entity"
	"github.com/jhoicas/asset-balance-api/internal/domain/repository"
	"github.com/jhoicas/asset-balance-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// CredentialValidator es la frontera de validación de credenciales.
// Hoy el login es un selector de rol; una implementación real se conecta aquí.
type CredentialValidator interface {
	Validate(ctx context.Context, user *entity.User, in dto.LoginRequest) error
}

// AllowAll acepta cualquier login (demo, sin credenciales).
type AllowAll struct{}

// Validate no verifica nada.
func (AllowAll) Validate(context.Context, *entity.User, dto.LoginRequest) error { return nil }

// SessionUseCase login de demostración: el operador elige rol y recibe un token de sesión.
type SessionUseCase struct {
	users     repository.UserRepository
	validator CredentialValidator
	jwtCfg    JWTConfig
	now       func() time.Time
}

// NewSessionUseCase construye el caso de uso; validator nil equivale a AllowAll.
func NewSessionUseCase(users repository.UserRepository, validator CredentialValidator, jwtCfg JWTConfig) *SessionUseCase {
	if validator == nil {
		validator = AllowAll{}
	}
	return &SessionUseCase{users: users, validator: validator, jwtCfg: jwtCfg, now: time.Now}
}

// Login abre una sesión del operador de demostración con el rol pedido.
func (uc *SessionUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if !entity.IsValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.users.GetDemoUser(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.validator.Validate(ctx, user, in); err != nil {
		return nil, domain.ErrUnauthorized
	}
	u := *user
	u.Role = in.Role
	return uc.issue(entity.SessionContext{
		SessionID: uuid.New().String(),
		User:      u,
		IssuedAt:  uc.now(),
	})
}

// SwitchRole reemite el token de la sesión actual con otro rol; conserva el SessionID.
func (uc *SessionUseCase) SwitchRole(_ context.Context, session entity.SessionContext, role string) (*dto.LoginResponse, error) {
	if !entity.IsValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	if session.SessionID == "" || session.User.ID == "" {
		return nil, domain.ErrUnauthorized
	}
	session.User.Role = role
	session.IssuedAt = uc.now()
	return uc.issue(session)
}

func (uc *SessionUseCase) issue(s entity.SessionContext) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes, jwt.Session{
		SessionID: s.SessionID,
		UserID:    s.User.ID,
		UserName:  s.User.Name,
		Role:      s.User.Role,
		BaseID:    s.User.Base,
		IssuedAt:  s.IssuedAt,
	})
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		SessionID: s.SessionID,
		ExpiresAt: s.IssuedAt.Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
		User: dto.UserResponse{
			ID:   s.User.ID,
			Name: s.User.Name,
			Role: s.User.Role,
			Base: s.User.Base,
		},
	}, nil
}
