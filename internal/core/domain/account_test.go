package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/retailbooks/retail_accounting_app/internal/core/domain"
)

// The EXPENSE account type and the Expense transaction struct are separate
// identifiers; both must stay usable side by side.
func TestAccountType_Values(t *testing.T) {
	assert.Equal(t, domain.AccountType("ASSET"), domain.AccountTypeAsset)
	assert.Equal(t, domain.AccountType("LIABILITY"), domain.AccountTypeLiability)
	assert.Equal(t, domain.AccountType("EQUITY"), domain.AccountTypeEquity)
	assert.Equal(t, domain.AccountType("REVENUE"), domain.AccountTypeRevenue)
	assert.Equal(t, domain.AccountType("EXPENSE"), domain.AccountTypeExpense)

	acct := domain.Account{AccountType: domain.AccountTypeExpense, SubType: domain.SubTypeOther}
	exp := domain.Expense{Status: "PAID"}
	assert.Equal(t, domain.AccountTypeExpense, acct.AccountType)
	assert.Equal(t, "PAID", exp.Status)
}
