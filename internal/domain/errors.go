package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrValidation   = errors.New("validación fallida")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")

	ErrProductNotFound = fmt.Errorf("producto: %w", ErrNotFound)
	ErrOrderNotFound   = fmt.Errorf("orden: %w", ErrNotFound)
	ErrNameRequired    = fmt.Errorf("%w: nombre requerido", ErrValidation)
)
