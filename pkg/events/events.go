package events

import "time"

// ExchangePedidos is the exchange the partner system (Sistema B) consumes.
const ExchangePedidos = "pedidos.events"

// RoutingKeyPedidoCriado routes order-created notifications.
const RoutingKeyPedidoCriado = "pedido.criado"

// PedidoItemPayload is one line item of a created order
type PedidoItemPayload struct {
	ProdutoID  int     `json:"produtoId"`
	Quantidade int     `json:"quantidade"`
	Valor      float64 `json:"valor"`
}

// PedidoCriadoEvent is published when an order is created
type PedidoCriadoEvent struct {
	Version   string              `json:"version"`
	EventType string              `json:"event_type"`
	Timestamp time.Time           `json:"timestamp"`
	TraceID   string              `json:"trace_id"`
	Payload   PedidoCriadoPayload `json:"payload"`
}

// PedidoCriadoPayload contains the created order data
type PedidoCriadoPayload struct {
	ID          uint                `json:"id"`
	PedidoID    int                 `json:"pedidoId"`
	ClienteID   int                 `json:"clienteId"`
	Imposto     float64             `json:"imposto"`
	Status      string              `json:"status"`
	DataCriacao time.Time           `json:"dataCriacao"`
	Itens       []PedidoItemPayload `json:"itens"`
}

// NewPedidoCriadoEvent creates a new PedidoCriadoEvent
func NewPedidoCriadoEvent(payload PedidoCriadoPayload, traceID string) *PedidoCriadoEvent {
	return &PedidoCriadoEvent{
		Version:   "1.0",
		EventType: "pedido.criado",
		Timestamp: time.Now(),
		TraceID:   traceID,
		Payload:   payload,
	}
}
