package domain

import (
	"github.com/Nestor-Neto/GerenciadorPedidos/pkg/errors"
)

// TaxStrategy names. The set is closed; new strategies require a code change.
const (
	StrategyVigente = "Vigente"
	StrategyReforma = "Reforma"
)

// TaxStrategy computes the tax amount for an order. Implementations are pure
// functions of the order's line items.
type TaxStrategy interface {
	Name() string
	Calculate(order *Order) float64
}

type rateStrategy struct {
	name string
	rate float64
}

func (s rateStrategy) Name() string { return s.name }

// Calculate returns rate * sum of item subtotals. An order with no items
// yields 0; that is a valid edge case, not an error.
func (s rateStrategy) Calculate(order *Order) float64 {
	var total float64
	for i := range order.Items {
		total += order.Items[i].Subtotal()
	}
	return total * s.rate
}

var strategies = map[string]TaxStrategy{
	StrategyVigente: rateStrategy{name: StrategyVigente, rate: 0.30},
	StrategyReforma: rateStrategy{name: StrategyReforma, rate: 0.20},
}

// ResolveTaxStrategy returns the strategy registered under name. An unknown
// name is a configuration defect, never caused by request input.
func ResolveTaxStrategy(name string) (TaxStrategy, error) {
	strategy, ok := strategies[name]
	if !ok {
		return nil, errors.NewConfiguration("estratégia de imposto '" + name + "' não encontrada")
	}
	return strategy, nil
}
