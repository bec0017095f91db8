package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/retailbooks/retail_accounting_app/internal/core/domain"
)

func TestPaymentMethod_Channels(t *testing.T) {
	tests := []struct {
		name      string
		method    domain.PaymentMethod
		movesCash bool
		movesBank bool
	}{
		{name: "cash moves the drawer", method: domain.PaymentCash, movesCash: true, movesBank: false},
		{name: "card moves the bank", method: domain.PaymentCard, movesCash: false, movesBank: true},
		{name: "bank transfer moves the bank", method: domain.PaymentBankTransfer, movesCash: false, movesBank: true},
		{name: "credit moves nothing", method: domain.PaymentCredit, movesCash: false, movesBank: false},
		{name: "unknown method moves nothing", method: domain.PaymentMethod("VOUCHER"), movesCash: false, movesBank: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.movesCash, tt.method.MovesCash())
			assert.Equal(t, tt.movesBank, tt.method.MovesBank())
		})
	}
}

func TestSale_SettledAmount(t *testing.T) {
	tests := []struct {
		name string
		sale domain.Sale
		want decimal.Decimal
	}{
		{
			name: "paid amount wins when recorded",
			sale: domain.Sale{GrandTotal: decimal.NewFromInt(100), PaidAmount: decimal.NewFromInt(80)},
			want: decimal.NewFromInt(80),
		},
		{
			name: "falls back to grand total when unpaid amount is zero",
			sale: domain.Sale{GrandTotal: decimal.NewFromInt(100), PaidAmount: decimal.Zero},
			want: decimal.NewFromInt(100),
		},
		{
			name: "negative paid amount falls back to grand total",
			sale: domain.Sale{GrandTotal: decimal.NewFromInt(100), PaidAmount: decimal.NewFromInt(-10)},
			want: decimal.NewFromInt(100),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(tt.sale.SettledAmount()))
		})
	}
}

func TestExpense_SettledAmount_FallsBackToAmount(t *testing.T) {
	e := domain.Expense{Amount: decimal.NewFromInt(60), PaidAmount: decimal.Zero}
	assert.True(t, decimal.NewFromInt(60).Equal(e.SettledAmount()))

	e.PaidAmount = decimal.NewFromInt(30) // partially paid
	assert.True(t, decimal.NewFromInt(30).Equal(e.SettledAmount()))
}

func TestLedgerEntry_SignedAmount(t *testing.T) {
	debit := domain.LedgerEntry{Debit: decimal.NewFromInt(500), Credit: decimal.Zero}
	assert.True(t, decimal.NewFromInt(500).Equal(debit.SignedAmount()))

	credit := domain.LedgerEntry{Debit: decimal.Zero, Credit: decimal.NewFromInt(120)}
	assert.True(t, decimal.NewFromInt(-120).Equal(credit.SignedAmount()))
}
