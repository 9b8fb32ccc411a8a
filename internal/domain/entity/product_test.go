package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rebaixa-api/internal/domain"
	"github.com/jhoicas/rebaixa-api/internal/domain/entity"
)

func TestParseStatus(t *testing.T) {
	s, err := entity.ParseStatus("para_rebaixa")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPendingMarkdown, s)

	s, err = entity.ParseStatus("em_rebaixa")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInMarkdown, s)

	_, err = entity.ParseStatus("vendido")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = entity.ParseStatus("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStatus_Label(t *testing.T) {
	assert.Equal(t, "Para Rebaixa", entity.StatusPendingMarkdown.Label())
	assert.Equal(t, "Em Rebaixa", entity.StatusInMarkdown.Label())
}

func TestProduct_Scope(t *testing.T) {
	p := &entity.Product{StoreID: "store-1", DepartmentID: "dept-1"}
	scope := p.Scope()
	assert.Equal(t, entity.ScopeStoreDepartment, scope.Kind)
	assert.Equal(t, "store-1", scope.StoreID)
	assert.Equal(t, "dept-1", scope.DepartmentID)
}
