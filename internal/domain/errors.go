package domain

import "errors"

// Errores de dominio (sin dependencias externas). El texto que ve el agente
// en el protocolo lo define la capa HTTP; aquí solo identidad del error.
var (
	ErrCustomerNotFound = errors.New("cliente no encontrado")
	ErrNoSearchCriteria = errors.New("sin criterio de búsqueda")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrInvalidDate      = errors.New("fecha inválida")
)
