package domain

import (
	"testing"
	"time"

	"github.com/Nestor-Neto/GerenciadorPedidos/pkg/errors"
)

func TestNewOrder_Success(t *testing.T) {
	before := time.Now().UTC()

	order, err := NewOrder(1001, 42)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if order.PedidoID != 1001 {
		t.Errorf("expected PedidoID 1001, got %d", order.PedidoID)
	}
	if order.ClienteID != 42 {
		t.Errorf("expected ClienteID 42, got %d", order.ClienteID)
	}
	if order.Status != StatusCriado {
		t.Errorf("expected status Criado, got %s", order.Status)
	}
	if order.Imposto != 0 {
		t.Errorf("expected zero imposto before calculation, got %f", order.Imposto)
	}
	if order.Items == nil || len(order.Items) != 0 {
		t.Errorf("expected empty items, got %v", order.Items)
	}
	if order.CreatedAt.Before(before) || order.CreatedAt.After(time.Now().UTC()) {
		t.Errorf("expected CreatedAt in UTC now, got %v", order.CreatedAt)
	}
}

func TestNewOrder_InvalidIDs(t *testing.T) {
	tests := []struct {
		name      string
		pedidoID  int
		clienteID int
	}{
		{"zero pedido id", 0, 42},
		{"negative pedido id", -1, 42},
		{"zero cliente id", 1001, 0},
		{"negative cliente id", 1001, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOrder(tt.pedidoID, tt.clienteID)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, errors.CodeValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestNewOrderItem_Validation(t *testing.T) {
	tests := []struct {
		name       string
		produtoID  int
		quantidade int
		valor      float64
		wantErr    bool
	}{
		{"valid item", 10, 2, 100.0, false},
		{"zero quantidade", 10, 0, 100.0, true},
		{"negative quantidade", 10, -1, 100.0, true},
		{"zero valor", 10, 2, 0, true},
		{"negative valor", 10, 2, -0.01, true},
		{"zero produto id", 0, 2, 100.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := NewOrderItem(tt.produtoID, tt.quantidade, tt.valor)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, errors.CodeValidation) {
					t.Errorf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if item.Subtotal() != float64(tt.quantidade)*tt.valor {
				t.Errorf("expected subtotal %f, got %f", float64(tt.quantidade)*tt.valor, item.Subtotal())
			}
		})
	}
}

func TestOrder_AddItem(t *testing.T) {
	order, _ := NewOrder(1001, 42)

	first, _ := NewOrderItem(10, 2, 100.0)
	second, _ := NewOrderItem(20, 1, 50.0)

	if err := order.AddItem(first); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := order.AddItem(second); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(order.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(order.Items))
	}
	// insertion order is preserved
	if order.Items[0].ProdutoID != 10 || order.Items[1].ProdutoID != 20 {
		t.Errorf("expected items in insertion order, got %v", order.Items)
	}

	if err := order.AddItem(nil); err == nil {
		t.Error("expected error adding nil item, got nil")
	}
}

func TestOrder_SetImposto(t *testing.T) {
	order, _ := NewOrder(1001, 42)
	order.SetImposto(60.0)

	if order.Imposto != 60.0 {
		t.Errorf("expected imposto 60.0, got %f", order.Imposto)
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    OrderStatus
		wantErr bool
	}{
		{"Criado", StatusCriado, false},
		{"criado", StatusCriado, false},
		{"EMPROCESSAMENTO", StatusEmProcessamento, false},
		{"1", StatusCriado, false},
		{"5", StatusCancelado, false},
		{"0", "", true},
		{"6", "", true},
		{"Desconhecido", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}
