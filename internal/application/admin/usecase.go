// Package admin implementa el acceso al panel de administración con un secreto compartido.
// No apto para un despliegue real: no hay credenciales por usuario.
package admin

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/campus-store/internal/application/dto"
	"github.com/jhoicas/campus-store/internal/domain"
	"github.com/jhoicas/campus-store/internal/domain/repository"
	"github.com/jhoicas/campus-store/pkg/jwt"
	"github.com/jhoicas/campus-store/pkg/logger"
)

// Subject sujeto de los tokens del panel.
const Subject = "admin"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase login/logout del panel.
type UseCase struct {
	flag   repository.AdminFlagRepository
	hash   []byte
	jwtCfg JWTConfig
	log    *logger.Logger
}

// NewUseCase construye el caso de uso. passwordHash (bcrypt) tiene prioridad; si está vacío
// se hashea password al arrancar.
func NewUseCase(flag repository.AdminFlagRepository, password, passwordHash string, jwtCfg JWTConfig, log *logger.Logger) (*UseCase, error) {
	if log == nil {
		log = logger.Nop()
	}
	hash := []byte(passwordHash)
	if passwordHash == "" {
		if password == "" {
			return nil, errors.New("admin: contraseña del panel vacía")
		}
		var err error
		if hash, err = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost); err != nil {
			return nil, fmt.Errorf("admin: hash: %w", err)
		}
	} else if _, err := bcrypt.Cost(hash); err != nil {
		return nil, fmt.Errorf("admin: ADMIN_PASSWORD_HASH inválido: %w", err)
	}
	return &UseCase{flag: flag, hash: hash, jwtCfg: jwtCfg, log: log.Component("admin")}, nil
}

// Login verifica la contraseña, activa la bandera y devuelve un token. ErrUnauthorized si no coincide.
func (uc *UseCase) Login(ctx context.Context, in dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	if err := bcrypt.CompareHashAndPassword(uc.hash, []byte(in.Password)); err != nil {
		uc.log.Warn().Msg("intento de acceso al panel con contraseña incorrecta")
		return nil, domain.ErrUnauthorized
	}
	if err := uc.flag.SetAuthenticated(ctx); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, Subject, jwt.RoleAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Msg("acceso al panel")
	return &dto.AdminLoginResponse{Token: token, ExpiresIn: uc.jwtCfg.ExpMinutes * 60}, nil
}

// Logout desactiva la bandera: todos los tokens emitidos dejan de servir.
func (uc *UseCase) Logout(ctx context.Context) error {
	if err := uc.flag.ClearAuthenticated(ctx); err != nil {
		return err
	}
	uc.log.Info().Msg("cierre del panel")
	return nil
}

// IsAuthenticated indica si la bandera está activa.
func (uc *UseCase) IsAuthenticated(ctx context.Context) (bool, error) {
	return uc.flag.IsAuthenticated(ctx)
}

// Authorize valida el token y la bandera. ErrUnauthorized si alguno falla.
func (uc *UseCase) Authorize(ctx context.Context, token string) (*jwt.Claims, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil || claims.Role != jwt.RoleAdmin {
		return nil, domain.ErrUnauthorized
	}
	ok, err := uc.flag.IsAuthenticated(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}
