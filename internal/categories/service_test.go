package categories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cashmonitor-dev/cashmonitor/internal/model"
)

func TestDefaults(t *testing.T) {
	svc := Defaults()

	assert.Contains(t, svc.All(model.KindExpense), "Miete")
	assert.Contains(t, svc.All(model.KindIncome), "Gehalt")
	assert.True(t, svc.Has(model.KindExpense, "Einkauf"))
	assert.False(t, svc.Has(model.KindIncome, "Einkauf"))
	assert.False(t, svc.Has(model.KindExpense, "Raumfahrt"))
}

func TestCustomLists(t *testing.T) {
	svc := NewService([]string{"Rent", "Food"}, []string{"Salary"})

	assert.Equal(t, []string{"Rent", "Food"}, svc.All(model.KindExpense))
	assert.Equal(t, []string{"Salary"}, svc.All(model.KindIncome))
	assert.True(t, svc.Has(model.KindIncome, "Salary"))
	assert.False(t, svc.Has(model.KindExpense, "Miete"))
}

func TestEmptyListsFallBackToDefaults(t *testing.T) {
	svc := NewService(nil, []string{"Salary"})

	assert.True(t, svc.Has(model.KindExpense, "Miete"))
	assert.True(t, svc.Has(model.KindIncome, "Salary"))
}
