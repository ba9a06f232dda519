package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Erros de domínio (sem dependências de infraestrutura).
var (
	ErrNotFound            = errors.New("recurso não encontrado")
	ErrValidation          = errors.New("entrada inválida")
	ErrLocationOccupied    = errors.New("localização já ocupada")
	ErrCapacityExceeded    = errors.New("capacidade da localização excedida")
	ErrInvalidTransition   = errors.New("transição de status inválida")
	ErrOptimisticLock      = errors.New("conflito de versão: registro modificado por outra operação")
	ErrNoLocationAvailable = errors.New("nenhuma localização disponível")
	ErrEmailAlreadyExists  = errors.New("o email já está registrado")
	ErrUnauthorized        = errors.New("não autorizado")
	ErrForbidden           = errors.New("acesso negado")
)

// ValidationError erro de validação com campo e mensagem específicos.
// errors.Is(err, ErrValidation) retorna true.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NewValidationError constrói um ValidationError.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// CapacityExceededError carrega o déficit em kg calculado na validação de capacidade.
// errors.Is(err, ErrCapacityExceeded) retorna true.
type CapacityExceededError struct {
	LocationID string
	DeficitKg  decimal.Decimal
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("capacidade excedida na localização %s (déficit de %s kg)", e.LocationID, e.DeficitKg)
}

func (e *CapacityExceededError) Is(target error) bool { return target == ErrCapacityExceeded }

// InvalidTransitionError transição de status proibida pela máquina de estados do produto.
// errors.Is(err, ErrInvalidTransition) retorna true.
type InvalidTransitionError struct {
	From    string
	To      string
	Message string
}

func (e *InvalidTransitionError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("transição de status inválida: %s → %s", e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool { return target == ErrInvalidTransition }
