package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInactiveUser       = errors.New("usuario inactivo")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUpstream           = errors.New("error del proveedor externo")
	ErrUpstreamOpen       = errors.New("proveedor externo no disponible temporalmente")
)
