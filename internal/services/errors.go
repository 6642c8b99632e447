package services

import "errors"

// Domain errors surfaced by services. Handlers map them onto HTTP statuses at
// the request boundary.
var (
	ErrMissingCredentials = errors.New("email e senha são obrigatórios")
	ErrEmailTaken         = errors.New("email já cadastrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrInvalidCredentials = errors.New("credenciais inválidas")
)
