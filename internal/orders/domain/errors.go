package domain

import (
	"fmt"

	"github.com/Nestor-Neto/GerenciadorPedidos/pkg/errors"
)

// Domain-specific errors. Messages are user-facing and stay in Portuguese,
// matching the API contract.
var (
	ErrInvalidPedidoID   = errors.NewValidation("o ID do pedido deve ser maior que zero", nil)
	ErrInvalidClienteID  = errors.NewValidation("o ID do cliente deve ser maior que zero", nil)
	ErrInvalidProdutoID  = errors.NewValidation("o ID do produto deve ser maior que zero", nil)
	ErrInvalidQuantidade = errors.NewValidation("a quantidade deve ser maior que zero", nil)
	ErrInvalidValor      = errors.NewValidation("o valor deve ser maior que zero", nil)
	ErrNilItem           = errors.NewValidation("o item não pode ser nulo", nil)
	ErrEmptyItems        = errors.NewValidation("o pedido deve conter pelo menos um item", nil)
	ErrInvalidStatus     = errors.NewValidation("status inválido", nil)
)

// NewDuplicatePedido creates the conflict error for a duplicate PedidoId.
func NewDuplicatePedido(pedidoID int) error {
	return errors.NewConflict(fmt.Sprintf("Já existe um pedido com o PedidoId %d.", pedidoID))
}

// NewOrderNotFound creates a not found error with the internal id.
func NewOrderNotFound(id uint) error {
	return errors.NewNotFound(fmt.Sprintf("Pedido com ID %d não encontrado", id))
}
