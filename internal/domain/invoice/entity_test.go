package invoice

import (
	"errors"
	"testing"
	"time"

	"github.com/hugohenrick/agro-dashboard/pkg/money"
)

func TestNewInvoice(t *testing.T) {
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	inv, err := NewInvoice("farmer-1", 1250.75, StatusPending, date)
	if err != nil {
		t.Fatalf("NewInvoice() retornou erro inesperado: %v", err)
	}

	if inv.AmountCents != 125075 {
		t.Errorf("AmountCents = %d, esperado 125075", inv.AmountCents)
	}
	if inv.Amount() != 1250.75 {
		t.Errorf("Amount() = %v, esperado 1250.75", inv.Amount())
	}
	if inv.Status != StatusPending {
		t.Errorf("Status = %s, esperado %s", inv.Status, StatusPending)
	}
	if inv.ID == "" {
		t.Error("ID não deveria ser vazio")
	}
}

func TestNewInvoiceValidation(t *testing.T) {
	date := time.Now()

	tests := []struct {
		name     string
		farmerID string
		amount   float64
		status   Status
		wantErr  error
	}{
		{name: "produtor vazio", farmerID: "", amount: 100, status: StatusPaid, wantErr: ErrEmptyFarmer},
		{name: "valor zero", farmerID: "farmer-1", amount: 0, status: StatusPaid, wantErr: ErrInvalidAmount},
		{name: "valor negativo", farmerID: "farmer-1", amount: -10, status: StatusPaid, wantErr: ErrInvalidAmount},
		{name: "status desconhecido", farmerID: "farmer-1", amount: 100, status: Status("cancelled"), wantErr: ErrInvalidStatus},
		{name: "precisão abaixo do centavo", farmerID: "farmer-1", amount: 10.005, status: StatusPaid, wantErr: money.ErrSubCentPrecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInvoice(tt.farmerID, tt.amount, tt.status, date)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewInvoice() erro = %v, esperado %v", err, tt.wantErr)
			}
		})
	}
}

func TestInvoiceSetAmount(t *testing.T) {
	inv, err := NewInvoice("farmer-1", 100, StatusPending, time.Now())
	if err != nil {
		t.Fatalf("NewInvoice() retornou erro inesperado: %v", err)
	}

	if err := inv.SetAmount(250.50); err != nil {
		t.Fatalf("SetAmount() retornou erro inesperado: %v", err)
	}
	if inv.AmountCents != 25050 {
		t.Errorf("AmountCents = %d, esperado 25050", inv.AmountCents)
	}

	if err := inv.SetAmount(10.001); !errors.Is(err, money.ErrSubCentPrecision) {
		t.Errorf("SetAmount() erro = %v, esperado %v", err, money.ErrSubCentPrecision)
	}
	if inv.AmountCents != 25050 {
		t.Errorf("AmountCents alterado após erro: %d", inv.AmountCents)
	}
}
