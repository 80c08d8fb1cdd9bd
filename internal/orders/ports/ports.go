package ports

import (
	"context"
	"time"

	"github.com/Nestor-Neto/GerenciadorPedidos/internal/orders/domain"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// Create inserts the order and its items and commits; the order is durable
	// once Create returns. The assigned internal id is written back.
	Create(ctx context.Context, order *domain.Order) error

	// Update persists changes to an existing order
	Update(ctx context.Context, order *domain.Order) error

	// GetByID retrieves an order by internal id
	GetByID(ctx context.Context, id uint) (*domain.Order, error)

	// GetByPedidoID retrieves an order by the caller-supplied PedidoId,
	// used for duplicate detection
	GetByPedidoID(ctx context.Context, pedidoID int) (*domain.Order, error)

	// GetByStatus retrieves all orders in the given status
	GetByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error)
}

// OrderNotifier defines the interface for notifying the downstream partner
// system (Sistema B) of a newly created order. Delivery is best-effort.
type OrderNotifier interface {
	NotifyCreated(ctx context.Context, order *domain.Order) error
}

// FeatureFlags resolves boolean feature flags. Missing or malformed flags
// resolve to false.
type FeatureFlags interface {
	IsEnabled(name string) bool
}

// Cache is an optional key-value store with per-entry expiry, used for read
// optimization only.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
