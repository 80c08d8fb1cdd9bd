package domain

import (
	"strconv"
	"strings"
	"time"
)

// OrderStatus represents the lifecycle status of an order. The wire values
// match the partner contract, so they stay in Portuguese.
type OrderStatus string

const (
	StatusCriado          OrderStatus = "Criado"
	StatusEmProcessamento OrderStatus = "EmProcessamento"
	StatusEnviado         OrderStatus = "Enviado"
	StatusEntregue        OrderStatus = "Entregue"
	StatusCancelado       OrderStatus = "Cancelado"
)

// statusOrdinals preserves the numeric values the legacy API accepted in the
// status query parameter.
var statusOrdinals = map[int]OrderStatus{
	1: StatusCriado,
	2: StatusEmProcessamento,
	3: StatusEnviado,
	4: StatusEntregue,
	5: StatusCancelado,
}

// ParseStatus resolves a status from its name (case-insensitive) or its
// numeric value.
func ParseStatus(value string) (OrderStatus, error) {
	if n, err := strconv.Atoi(value); err == nil {
		if status, ok := statusOrdinals[n]; ok {
			return status, nil
		}
		return "", ErrInvalidStatus
	}
	for _, status := range statusOrdinals {
		if strings.EqualFold(string(status), value) {
			return status, nil
		}
	}
	return "", ErrInvalidStatus
}

// OrderItem is a line item of an order. Items belong exclusively to the order
// that created them.
type OrderItem struct {
	ID         uint
	ProdutoID  int
	Quantidade int
	Valor      float64
}

// NewOrderItem creates a line item, validating its invariants.
func NewOrderItem(produtoID, quantidade int, valor float64) (*OrderItem, error) {
	if produtoID <= 0 {
		return nil, ErrInvalidProdutoID
	}
	if quantidade <= 0 {
		return nil, ErrInvalidQuantidade
	}
	if valor <= 0 {
		return nil, ErrInvalidValor
	}
	return &OrderItem{
		ProdutoID:  produtoID,
		Quantidade: quantidade,
		Valor:      valor,
	}, nil
}

// Subtotal is computed on demand, never stored.
func (i *OrderItem) Subtotal() float64 {
	return float64(i.Quantidade) * i.Valor
}

// Order is the aggregate root. ID is assigned by the persistence layer on
// insert; PedidoID is the caller-supplied business identifier, unique across
// all orders.
type Order struct {
	ID        uint
	PedidoID  int
	ClienteID int
	Imposto   float64
	Status    OrderStatus
	CreatedAt time.Time
	Items     []OrderItem
}

// NewOrder creates an order in the Criado status with its creation timestamp
// fixed in UTC. An order may be constructed without items; the minimum-item
// business rule is enforced at the use-case boundary.
func NewOrder(pedidoID, clienteID int) (*Order, error) {
	if pedidoID <= 0 {
		return nil, ErrInvalidPedidoID
	}
	if clienteID <= 0 {
		return nil, ErrInvalidClienteID
	}
	return &Order{
		PedidoID:  pedidoID,
		ClienteID: clienteID,
		Status:    StatusCriado,
		CreatedAt: time.Now().UTC(),
		Items:     []OrderItem{},
	}, nil
}

// AddItem appends a line item. Items are append-only; there is no removal.
func (o *Order) AddItem(item *OrderItem) error {
	if item == nil {
		return ErrNilItem
	}
	o.Items = append(o.Items, *item)
	return nil
}

// SetImposto attaches the server-computed tax amount.
func (o *Order) SetImposto(valor float64) {
	o.Imposto = valor
}
