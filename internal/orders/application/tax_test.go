package application

import (
	"context"
	"testing"

	"github.com/Nestor-Neto/GerenciadorPedidos/internal/orders/domain"
	"github.com/Nestor-Neto/GerenciadorPedidos/pkg/logger"
)

// stubFlags is a fixed-value feature flag provider
type stubFlags struct {
	enabled map[string]bool
}

func (s stubFlags) IsEnabled(name string) bool {
	return s.enabled[name]
}

func taxOrder(t *testing.T) *domain.Order {
	t.Helper()
	order, err := domain.NewOrder(1001, 42)
	if err != nil {
		t.Fatalf("failed to build order: %v", err)
	}
	item, err := domain.NewOrderItem(10, 2, 100.0)
	if err != nil {
		t.Fatalf("failed to build item: %v", err)
	}
	if err := order.AddItem(item); err != nil {
		t.Fatalf("failed to add item: %v", err)
	}
	return order
}

func TestTaxService_FlagDisabled_UsesVigente(t *testing.T) {
	log := logger.New("test", "debug", "json")
	svc := NewTaxService(stubFlags{enabled: map[string]bool{}}, log)

	imposto, err := svc.Calculate(context.Background(), taxOrder(t))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// 2 * 100 * 0.30
	if imposto != 60.0 {
		t.Errorf("expected imposto 60.0, got %f", imposto)
	}
}

func TestTaxService_FlagEnabled_UsesReforma(t *testing.T) {
	log := logger.New("test", "debug", "json")
	svc := NewTaxService(stubFlags{enabled: map[string]bool{FeatureReformaTributaria: true}}, log)

	imposto, err := svc.Calculate(context.Background(), taxOrder(t))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// 2 * 100 * 0.20
	if imposto != 40.0 {
		t.Errorf("expected imposto 40.0, got %f", imposto)
	}
}

func TestTaxService_EmptyOrder(t *testing.T) {
	log := logger.New("test", "debug", "json")
	svc := NewTaxService(stubFlags{enabled: map[string]bool{}}, log)

	order, _ := domain.NewOrder(1001, 42)

	imposto, err := svc.Calculate(context.Background(), order)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if imposto != 0 {
		t.Errorf("expected imposto 0 for empty order, got %f", imposto)
	}
}
