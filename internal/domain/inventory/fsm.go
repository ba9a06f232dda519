package inventory

import (
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/entity"
)

// Máquina de estados do produto (serviço de domínio puro).
// LOCADO → AGUARDANDO_RETIRADA → {LOCADO, RETIRADO}. RETIRADO é terminal.
var transitions = map[string][]string{
	entity.ProductStatusLocado:             {entity.ProductStatusAguardandoRetirada},
	entity.ProductStatusAguardandoRetirada: {entity.ProductStatusLocado, entity.ProductStatusRetirado},
	entity.ProductStatusRetirado:           {},
}

// CanTransition indica se a transição from → to é permitida.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// EnsureTransition valida a transição e retorna InvalidTransitionError com a
// mensagem específica do caso quando proibida.
func EnsureTransition(from, to string) error {
	if CanTransition(from, to) {
		return nil
	}
	return &domain.InvalidTransitionError{From: from, To: to, Message: transitionMessage(from, to)}
}

// transitionMessage mensagem de negócio por transição proibida.
func transitionMessage(from, to string) string {
	switch to {
	case entity.ProductStatusAguardandoRetirada:
		return "apenas produtos armazenados podem ter retirada solicitada"
	case entity.ProductStatusLocado:
		if from != entity.ProductStatusAguardandoRetirada {
			return "apenas produtos aguardando retirada podem ter a solicitação cancelada"
		}
	case entity.ProductStatusRetirado:
		return "apenas produtos aguardando retirada podem ser retirados"
	}
	return ""
}
