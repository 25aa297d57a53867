package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicateEmail     = errors.New("el email ya está registrado")
	ErrDuplicateUsername  = errors.New("el nombre de usuario ya está en uso")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUnavailable        = errors.New("servicio no disponible")
)
