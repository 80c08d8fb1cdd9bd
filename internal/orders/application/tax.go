package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/Nestor-Neto/GerenciadorPedidos/internal/orders/domain"
	"github.com/Nestor-Neto/GerenciadorPedidos/internal/orders/ports"
	"github.com/Nestor-Neto/GerenciadorPedidos/pkg/logger"
)

// FeatureReformaTributaria is the flag that switches tax calculation to the
// reform strategy.
const FeatureReformaTributaria = "ReformaTributaria"

// TaxService selects a tax strategy based on the ReformaTributaria feature
// flag and applies it.
type TaxService struct {
	flags ports.FeatureFlags
	log   *logger.Logger
}

// NewTaxService creates a new tax service
func NewTaxService(flags ports.FeatureFlags, log *logger.Logger) *TaxService {
	return &TaxService{
		flags: flags,
		log:   log,
	}
}

// Calculate computes the tax amount for the order. A missing strategy mapping
// is a fatal configuration error and propagates unchanged.
func (s *TaxService) Calculate(ctx context.Context, order *domain.Order) (float64, error) {
	reformaAtiva := s.flags.IsEnabled(FeatureReformaTributaria)

	name := domain.StrategyVigente
	if reformaAtiva {
		name = domain.StrategyReforma
	}

	s.log.WithContext(ctx).Info("calculating tax",
		zap.Int("pedido_id", order.PedidoID),
		zap.String("strategy", name),
		zap.Bool("reforma_tributaria", reformaAtiva),
	)

	strategy, err := domain.ResolveTaxStrategy(name)
	if err != nil {
		return 0, err
	}

	imposto := strategy.Calculate(order)

	s.log.WithContext(ctx).Info("tax calculated",
		zap.Int("pedido_id", order.PedidoID),
		zap.Float64("imposto", imposto),
	)

	return imposto, nil
}
