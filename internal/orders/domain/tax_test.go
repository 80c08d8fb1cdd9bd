package domain

import (
	"math"
	"testing"

	"github.com/Nestor-Neto/GerenciadorPedidos/pkg/errors"
)

func orderWithItems(t *testing.T, items ...[3]float64) *Order {
	t.Helper()
	order, err := NewOrder(1001, 42)
	if err != nil {
		t.Fatalf("failed to build order: %v", err)
	}
	for _, it := range items {
		item, err := NewOrderItem(int(it[0]), int(it[1]), it[2])
		if err != nil {
			t.Fatalf("failed to build item: %v", err)
		}
		if err := order.AddItem(item); err != nil {
			t.Fatalf("failed to add item: %v", err)
		}
	}
	return order
}

func TestResolveTaxStrategy(t *testing.T) {
	vigente, err := ResolveTaxStrategy(StrategyVigente)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if vigente.Name() != StrategyVigente {
		t.Errorf("expected name Vigente, got %s", vigente.Name())
	}

	reforma, err := ResolveTaxStrategy(StrategyReforma)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if reforma.Name() != StrategyReforma {
		t.Errorf("expected name Reforma, got %s", reforma.Name())
	}
}

func TestResolveTaxStrategy_Unknown(t *testing.T) {
	_, err := ResolveTaxStrategy("Inexistente")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, errors.CodeConfiguration) {
		t.Errorf("expected configuration error, got %v", err)
	}
}

func TestCalculate_Rates(t *testing.T) {
	// single item {quantidade: 2, valor: 100}: base 200
	order := orderWithItems(t, [3]float64{10, 2, 100})

	vigente, _ := ResolveTaxStrategy(StrategyVigente)
	if got := vigente.Calculate(order); got != 60.0 {
		t.Errorf("Vigente: expected 60.0, got %f", got)
	}

	reforma, _ := ResolveTaxStrategy(StrategyReforma)
	if got := reforma.Calculate(order); got != 40.0 {
		t.Errorf("Reforma: expected 40.0, got %f", got)
	}
}

func TestCalculate_SumsSubtotals(t *testing.T) {
	// 2*100 + 3*50 = 350
	order := orderWithItems(t, [3]float64{10, 2, 100}, [3]float64{20, 3, 50})

	vigente, _ := ResolveTaxStrategy(StrategyVigente)
	if got, want := vigente.Calculate(order), 350*0.30; math.Abs(got-want) > 1e-9 {
		t.Errorf("Vigente: expected %f, got %f", want, got)
	}

	reforma, _ := ResolveTaxStrategy(StrategyReforma)
	if got, want := reforma.Calculate(order), 350*0.20; math.Abs(got-want) > 1e-9 {
		t.Errorf("Reforma: expected %f, got %f", want, got)
	}
}

func TestCalculate_EmptyOrder(t *testing.T) {
	order := orderWithItems(t)

	for _, name := range []string{StrategyVigente, StrategyReforma} {
		strategy, _ := ResolveTaxStrategy(name)
		if got := strategy.Calculate(order); got != 0 {
			t.Errorf("%s: expected 0 for empty order, got %f", name, got)
		}
	}
}
