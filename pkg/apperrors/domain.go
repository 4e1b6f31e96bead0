package apperrors

import (
	"net/http"
)

// Factories and predefined variables for domain errors shared across services.

// ErrNotFound converts a repository not-found sentinel into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Registro não encontrado", http.StatusNotFound)
}

// ErrAlreadyExists converts a repository duplicate sentinel into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Registro já existe", http.StatusConflict)
}

// ErrConflict is the generic 409 factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation flags an operation the current state does not allow.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- auth ---

// ErrInvalidCredentials is returned for unknown email, wrong password AND
// inactive accounts. The three cases are deliberately indistinguishable so
// the login endpoint cannot be used to enumerate accounts.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Email ou senha incorretos",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Token inválido ou expirado",
	http.StatusUnauthorized,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Permissão insuficiente para esta operação",
	http.StatusForbidden,
)

// --- admin users ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"usuarios",
	"Email já está em uso",
	http.StatusConflict,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Senha muito curta. Mínimo de 6 caracteres.",
	http.StatusBadRequest,
)

var ErrInvalidPerfil = New(
	CodeInvalidOperation,
	"usuarios",
	"Perfil de acesso inválido",
	http.StatusBadRequest,
)

// --- propostas ---

var ErrInvalidCPF = New(
	CodeValidationFailed,
	"propostas",
	"CPF inválido",
	http.StatusBadRequest,
)

var ErrInvalidValor = New(
	CodeValidationFailed,
	"propostas",
	"Informe um valor mensal válido",
	http.StatusBadRequest,
)

var ErrInvalidDataNascimento = New(
	CodeValidationFailed,
	"propostas",
	"Data de nascimento inválida",
	http.StatusBadRequest,
)

// ErrCadastroIncompleto guards the registration-completion step: the three
// administrative fields must all be present.
var ErrCadastroIncompleto = New(
	CodeInvalidOperation,
	"propostas",
	"Administradora, data de vencimento e data de vigência são obrigatórias",
	http.StatusBadRequest,
)

// --- uploads ---

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"uploads",
	"Arquivo excede o tamanho máximo permitido",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"uploads",
	"Tipo de arquivo não permitido",
	http.StatusUnsupportedMediaType,
)

var ErrInvalidDocumentType = New(
	CodeValidationFailed,
	"uploads",
	"Tipo de documento desconhecido",
	http.StatusBadRequest,
)
