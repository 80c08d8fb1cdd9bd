package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Nestor-Neto/GerenciadorPedidos/internal/orders/domain"
	apperrors "github.com/Nestor-Neto/GerenciadorPedidos/pkg/errors"
)

// PedidoModel is the GORM model for orders (persistence layer). The unique
// index on pedido_id is the authoritative duplicate guard.
type PedidoModel struct {
	ID        uint               `gorm:"primaryKey"`
	PedidoID  int                `gorm:"uniqueIndex;not null"`
	ClienteID int                `gorm:"index;not null"`
	Imposto   float64            `gorm:"not null;default:0"`
	Status    domain.OrderStatus `gorm:"size:20;not null;default:'Criado'"`
	CreatedAt time.Time
	Items     []PedidoItemModel `gorm:"foreignKey:PedidoRef;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (PedidoModel) TableName() string {
	return "pedidos"
}

// PedidoItemModel is the GORM model for order line items
type PedidoItemModel struct {
	ID         uint    `gorm:"primaryKey"`
	PedidoRef  uint    `gorm:"index;not null"`
	ProdutoID  int     `gorm:"not null"`
	Quantidade int     `gorm:"not null"`
	Valor      float64 `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PedidoItemModel) TableName() string {
	return "pedido_itens"
}

// PostgresOrderRepository implements OrderRepository using PostgreSQL
type PostgresOrderRepository struct {
	db *gorm.DB
}

// NewPostgresOrderRepository creates a new PostgreSQL order repository
func NewPostgresOrderRepository(db *gorm.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

// Migrate runs auto-migration for the order models
func (r *PostgresOrderRepository) Migrate() error {
	return r.db.AutoMigrate(&PedidoModel{}, &PedidoItemModel{})
}

// Create inserts the order with its items in one transaction. The order is
// durable once Create returns. A duplicate pedido_id that slipped past the
// pre-check surfaces here as a conflict.
func (r *PostgresOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	model := toModel(order)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return apperrors.NewConflict("pedido duplicado")
		}
		return apperrors.NewInternal("failed to create order", result.Error)
	}

	order.ID = model.ID
	for i := range model.Items {
		order.Items[i].ID = model.Items[i].ID
	}

	return nil
}

// Update persists changes to an existing order
func (r *PostgresOrderRepository) Update(ctx context.Context, order *domain.Order) error {
	model := toModel(order)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return apperrors.NewInternal("failed to update order", result.Error)
	}

	return nil
}

// GetByID retrieves an order by internal id
func (r *PostgresOrderRepository) GetByID(ctx context.Context, id uint) (*domain.Order, error) {
	var model PedidoModel

	result := r.db.WithContext(ctx).Preload("Items").First(&model, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.NewOrderNotFound(id)
		}
		return nil, apperrors.NewInternal("failed to get order", result.Error)
	}

	return toDomain(&model), nil
}

// GetByPedidoID retrieves an order by the caller-supplied PedidoId
func (r *PostgresOrderRepository) GetByPedidoID(ctx context.Context, pedidoID int) (*domain.Order, error) {
	var model PedidoModel

	result := r.db.WithContext(ctx).Preload("Items").Where("pedido_id = ?", pedidoID).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("pedido não encontrado")
		}
		return nil, apperrors.NewInternal("failed to get order by pedido id", result.Error)
	}

	return toDomain(&model), nil
}

// GetByStatus retrieves all orders in the given status
func (r *PostgresOrderRepository) GetByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	var models []PedidoModel

	result := r.db.WithContext(ctx).Preload("Items").Where("status = ?", status).Find(&models)
	if result.Error != nil {
		return nil, apperrors.NewInternal("failed to get orders by status", result.Error)
	}

	orders := make([]*domain.Order, len(models))
	for i := range models {
		orders[i] = toDomain(&models[i])
	}

	return orders, nil
}

// toModel converts a domain aggregate to GORM models
func toModel(order *domain.Order) *PedidoModel {
	items := make([]PedidoItemModel, len(order.Items))
	for i, item := range order.Items {
		items[i] = PedidoItemModel{
			ID:         item.ID,
			ProdutoID:  item.ProdutoID,
			Quantidade: item.Quantidade,
			Valor:      item.Valor,
		}
	}

	return &PedidoModel{
		ID:        order.ID,
		PedidoID:  order.PedidoID,
		ClienteID: order.ClienteID,
		Imposto:   order.Imposto,
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
		Items:     items,
	}
}

// toDomain converts GORM models to the domain aggregate
func toDomain(model *PedidoModel) *domain.Order {
	items := make([]domain.OrderItem, len(model.Items))
	for i, item := range model.Items {
		items[i] = domain.OrderItem{
			ID:         item.ID,
			ProdutoID:  item.ProdutoID,
			Quantidade: item.Quantidade,
			Valor:      item.Valor,
		}
	}

	return &domain.Order{
		ID:        model.ID,
		PedidoID:  model.PedidoID,
		ClienteID: model.ClienteID,
		Imposto:   model.Imposto,
		Status:    model.Status,
		CreatedAt: model.CreatedAt,
		Items:     items,
	}
}
