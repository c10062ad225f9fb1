package entity

import "errors"

// Erros de domínio compartilhados. Os repositórios traduzem erros do
// banco (ex: unique_violation) para estes sentinelas; os handlers
// traduzem para status HTTP.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrAlreadyExists      = errors.New("resource already exists")
)
