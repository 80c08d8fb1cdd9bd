package adapters

import (
	"context"
	"time"

	"github.com/Nestor-Neto/GerenciadorPedidos/internal/orders/domain"
	"github.com/Nestor-Neto/GerenciadorPedidos/pkg/events"
	"github.com/Nestor-Neto/GerenciadorPedidos/pkg/logger"
	"github.com/Nestor-Neto/GerenciadorPedidos/pkg/rabbitmq"
)

// RabbitMQNotifier notifies the partner system (Sistema B) of created orders
// by publishing to its exchange. Each publish is bounded by a timeout so a
// hanging broker cannot stall a create request.
type RabbitMQNotifier struct {
	publisher *rabbitmq.Publisher
	timeout   time.Duration
	log       *logger.Logger
}

// NewRabbitMQNotifier creates a new partner notifier
func NewRabbitMQNotifier(publisher *rabbitmq.Publisher, timeout time.Duration, log *logger.Logger) *RabbitMQNotifier {
	return &RabbitMQNotifier{
		publisher: publisher,
		timeout:   timeout,
		log:       log,
	}
}

// NotifyCreated publishes the created order. The caller decides what to do
// with a failure; this adapter only reports it.
func (n *RabbitMQNotifier) NotifyCreated(ctx context.Context, order *domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	itens := make([]events.PedidoItemPayload, len(order.Items))
	for i, item := range order.Items {
		itens[i] = events.PedidoItemPayload{
			ProdutoID:  item.ProdutoID,
			Quantidade: item.Quantidade,
			Valor:      item.Valor,
		}
	}

	event := events.NewPedidoCriadoEvent(events.PedidoCriadoPayload{
		ID:          order.ID,
		PedidoID:    order.PedidoID,
		ClienteID:   order.ClienteID,
		Imposto:     order.Imposto,
		Status:      string(order.Status),
		DataCriacao: order.CreatedAt,
		Itens:       itens,
	}, logger.GetTraceID(ctx))

	return n.publisher.Publish(ctx, events.RoutingKeyPedidoCriado, event)
}
