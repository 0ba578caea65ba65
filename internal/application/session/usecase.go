// Package session maneja el único cliente con sesión iniciada y su historial de órdenes.
package session

import (
	"context"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/campus-store/internal/application/dto"
	"github.com/jhoicas/campus-store/internal/domain"
	"github.com/jhoicas/campus-store/internal/domain/entity"
	"github.com/jhoicas/campus-store/internal/domain/repository"
	"github.com/jhoicas/campus-store/pkg/logger"
)

// UseCase inicio y cierre de sesión del cliente.
type UseCase struct {
	sessions repository.SessionRepository
	orders   repository.OrderRepository
	now      func() time.Time
	log      *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(sessions repository.SessionRepository, orders repository.OrderRepository, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{sessions: sessions, orders: orders, now: time.Now, log: log.Component("session")}
}

// WithClock fija el reloj usado para el ID del usuario (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// SignIn crea el usuario y lo guarda como sesión actual. Si ya había un usuario, se reemplaza
// y su historial local se borra junto con él.
func (uc *UseCase) SignIn(ctx context.Context, in dto.SignInRequest) (*dto.SessionResponse, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: email inválido", domain.ErrValidation)
	}
	user := entity.User{
		ID:           strconv.FormatInt(uc.now().UnixMilli(), 10),
		Name:         name,
		Email:        email,
		ProfileImage: strings.TrimSpace(in.ProfileImage),
	}
	prev, err := uc.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}
	if prev != nil {
		if err := uc.orders.ClearUserOrders(ctx); err != nil {
			return nil, err
		}
		uc.log.Info().Str("user_id", prev.ID).Msg("sesión reemplazada")
	}
	if err := uc.sessions.Save(ctx, user); err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", user.ID).Msg("sesión iniciada")
	return &dto.SessionResponse{Authenticated: true, User: dto.NewUserResponse(&user)}, nil
}

// SignOut borra el usuario y su historial local de órdenes. Las órdenes globales se conservan.
func (uc *UseCase) SignOut(ctx context.Context) error {
	if err := uc.sessions.Clear(ctx); err != nil {
		return err
	}
	if err := uc.orders.ClearUserOrders(ctx); err != nil {
		return err
	}
	uc.log.Info().Msg("sesión cerrada")
	return nil
}

// Current estado de la sesión.
func (uc *UseCase) Current(ctx context.Context) (*dto.SessionResponse, error) {
	user, err := uc.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{Authenticated: user != nil, User: dto.NewUserResponse(user)}, nil
}

// MyOrders historial del usuario con sesión. Sin sesión ErrUnauthorized.
func (uc *UseCase) MyOrders(ctx context.Context) (*dto.OrderListResponse, error) {
	user, err := uc.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	orders, err := uc.orders.ListUserOrders(ctx)
	if err != nil {
		return nil, err
	}
	res := dto.NewOrderListResponse("", orders)
	return &res, nil
}
