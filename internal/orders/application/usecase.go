package application

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Nestor-Neto/GerenciadorPedidos/internal/orders/domain"
	"github.com/Nestor-Neto/GerenciadorPedidos/internal/orders/ports"
	"github.com/Nestor-Neto/GerenciadorPedidos/pkg/errors"
	"github.com/Nestor-Neto/GerenciadorPedidos/pkg/logger"
	"github.com/Nestor-Neto/GerenciadorPedidos/pkg/metrics"
)

// OrderUseCase orchestrates order creation, lookup, listing and batch
// processing.
type OrderUseCase struct {
	repo     ports.OrderRepository
	tax      *TaxService
	notifier ports.OrderNotifier
	cache    ports.Cache
	cacheTTL time.Duration
	log      *logger.Logger
}

// NewOrderUseCase creates a new order use case. The notifier and cache are
// optional; a nil notifier skips partner notification and a nil cache reads
// straight from the repository.
func NewOrderUseCase(
	repo ports.OrderRepository,
	tax *TaxService,
	notifier ports.OrderNotifier,
	cache ports.Cache,
	cacheTTL time.Duration,
	log *logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		repo:     repo,
		tax:      tax,
		notifier: notifier,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

// CreateItemInput is one line item of a creation request
type CreateItemInput struct {
	ProdutoID  int
	Quantidade int
	Valor      float64
}

// CreateOrderInput represents the input for creating an order
type CreateOrderInput struct {
	PedidoID  int
	ClienteID int
	Itens     []CreateItemInput
}

// CreateOrder runs the full creation workflow: duplicate check, aggregate
// construction, tax calculation, persistence and best-effort partner
// notification. The order stays created even if notification fails.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, input *CreateOrderInput) (*domain.Order, error) {
	if input == nil {
		uc.log.WithContext(ctx).Warn("create order called with nil input")
		return nil, errors.NewValidation("os dados do pedido são obrigatórios", nil)
	}

	// Pre-check is an optimization; the unique index on pedido_id is the
	// authoritative guard against concurrent duplicates.
	existing, err := uc.repo.GetByPedidoID(ctx, input.PedidoID)
	if err != nil && !errors.Is(err, errors.CodeNotFound) {
		return nil, errors.Wrap(err, "falha ao verificar duplicidade")
	}
	if existing != nil {
		uc.log.WithContext(ctx).Warn("duplicate pedido rejected",
			zap.Int("pedido_id", input.PedidoID),
		)
		metrics.OrdersRejected.WithLabelValues(errors.CodeConflict).Inc()
		return nil, domain.NewDuplicatePedido(input.PedidoID)
	}

	order, err := buildOrder(input)
	if err != nil {
		metrics.OrdersRejected.WithLabelValues(errors.CodeValidation).Inc()
		return nil, err
	}

	imposto, err := uc.tax.Calculate(ctx, order)
	if err != nil {
		return nil, err
	}
	order.SetImposto(imposto)

	if err := uc.repo.Create(ctx, order); err != nil {
		// A late unique-constraint violation at commit time is the same
		// business conflict as one caught by the pre-check.
		if errors.Is(err, errors.CodeConflict) {
			metrics.OrdersRejected.WithLabelValues(errors.CodeConflict).Inc()
			return nil, domain.NewDuplicatePedido(input.PedidoID)
		}
		return nil, errors.Wrap(err, "falha ao persistir o pedido")
	}

	metrics.OrdersCreated.Inc()
	uc.log.WithContext(ctx).Info("order created",
		zap.Uint("id", order.ID),
		zap.Int("pedido_id", order.PedidoID),
		zap.Int("cliente_id", order.ClienteID),
		zap.Float64("imposto", order.Imposto),
	)

	uc.notifyPartner(ctx, order)

	return order, nil
}

// notifyPartner sends the created order to Sistema B. Failure is logged and
// swallowed: order creation must succeed independent of partner availability.
func (uc *OrderUseCase) notifyPartner(ctx context.Context, order *domain.Order) {
	if uc.notifier == nil {
		return
	}
	if err := uc.notifier.NotifyCreated(ctx, order); err != nil {
		metrics.NotifyFailures.Inc()
		uc.log.WithContext(ctx).Error("failed to notify partner system",
			zap.Error(err),
			zap.Int("pedido_id", order.PedidoID),
		)
		return
	}
	uc.log.WithContext(ctx).Info("order sent to partner system",
		zap.Int("pedido_id", order.PedidoID),
	)
}

// GetOrder retrieves an order by internal id, consulting the read cache first
// when one is configured. Cache failures degrade to repository reads.
func (uc *OrderUseCase) GetOrder(ctx context.Context, id uint) (*domain.Order, error) {
	key := fmt.Sprintf("pedidos:id:%d", id)

	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, key); err == nil && cached != "" {
			var order domain.Order
			if err := json.Unmarshal([]byte(cached), &order); err == nil {
				return &order, nil
			}
		}
	}

	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(order); err == nil {
			if err := uc.cache.Set(ctx, key, string(data), uc.cacheTTL); err != nil {
				uc.log.WithContext(ctx).Warn("failed to cache order",
					zap.Error(err),
					zap.Uint("id", id),
				)
			}
		}
	}

	return order, nil
}

// ListOrdersByStatus returns all orders in the given status. An empty result
// is a valid empty slice, never an error.
func (uc *OrderUseCase) ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	orders, err := uc.repo.GetByStatus(ctx, status)
	if err != nil {
		return nil, err
	}

	uc.log.WithContext(ctx).Info("orders listed by status",
		zap.String("status", string(status)),
		zap.Int("count", len(orders)),
	)

	return orders, nil
}

// BatchItemSuccess is one successfully created order of a batch
type BatchItemSuccess struct {
	ID     uint
	Status domain.OrderStatus
}

// BatchItemError is one failed item of a batch, carrying the original
// PedidoId and the failure's user-facing message
type BatchItemError struct {
	PedidoID int
	Mensagem string
}

// BatchResult reports the outcome of a batch, with every input item appearing
// exactly once across the two lists
type BatchResult struct {
	Sucessos        []BatchItemSuccess
	Erros           []BatchItemError
	TotalProcessado int
	TotalSucesso    int
	TotalErros      int
}

// ProcessBatch creates each order in input order. A failed item never stops
// the batch, and there is no cross-item rollback: each item's side effects are
// final regardless of sibling outcomes.
func (uc *OrderUseCase) ProcessBatch(ctx context.Context, inputs []CreateOrderInput) (*BatchResult, error) {
	if len(inputs) == 0 {
		return nil, errors.NewValidation("a lista de pedidos é obrigatória e não pode estar vazia", nil)
	}

	result := &BatchResult{
		Sucessos: []BatchItemSuccess{},
		Erros:    []BatchItemError{},
	}

	for i := range inputs {
		input := inputs[i]
		metrics.BatchItems.Inc()

		order, err := uc.CreateOrder(ctx, &input)
		if err != nil {
			if !errors.IsDomain(err) {
				uc.log.WithContext(ctx).Error("unexpected failure processing batch item",
					zap.Error(err),
					zap.Int("pedido_id", input.PedidoID),
				)
			}
			result.Erros = append(result.Erros, BatchItemError{
				PedidoID: input.PedidoID,
				Mensagem: errors.UserFacingMessage(err),
			})
			continue
		}

		result.Sucessos = append(result.Sucessos, BatchItemSuccess{
			ID:     order.ID,
			Status: order.Status,
		})
	}

	result.TotalProcessado = len(inputs)
	result.TotalSucesso = len(result.Sucessos)
	result.TotalErros = len(result.Erros)

	uc.log.WithContext(ctx).Info("batch processed",
		zap.Int("total", result.TotalProcessado),
		zap.Int("sucessos", result.TotalSucesso),
		zap.Int("erros", result.TotalErros),
	)

	return result, nil
}

// buildOrder maps a creation input to the aggregate, enforcing the
// minimum-item rule the aggregate itself leaves to this boundary.
func buildOrder(input *CreateOrderInput) (*domain.Order, error) {
	if len(input.Itens) == 0 {
		return nil, domain.ErrEmptyItems
	}

	order, err := domain.NewOrder(input.PedidoID, input.ClienteID)
	if err != nil {
		return nil, err
	}

	for _, it := range input.Itens {
		item, err := domain.NewOrderItem(it.ProdutoID, it.Quantidade, it.Valor)
		if err != nil {
			return nil, err
		}
		if err := order.AddItem(item); err != nil {
			return nil, err
		}
	}

	return order, nil
}
