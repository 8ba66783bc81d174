package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMaterial_DefaultsAndStringNumbers(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	// Numeric fields arrive as strings from the form layer
	w := env.do(t, http.MethodPost, "/api/materials", token, map[string]any{
		"name":     "Battery Cell",
		"sku":      "BAT-100",
		"supplier": "CellCo",
		"quantity": "250",
		"minStock": "50",
		"unitCost": "4.75",
	})

	require.Equal(t, http.StatusOK, w.Code)
	material := decode(t, w)["material"].(map[string]any)
	assert.Equal(t, "electronics", material["category"])
	assert.Equal(t, "units", material["unit"])
	assert.Equal(t, float64(250), material["quantity"])
	assert.Equal(t, float64(50), material["minStock"])
	assert.Equal(t, 4.75, material["unitCost"])
}

func TestCreateMaterial_DuplicateSKU(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	w := env.do(t, http.MethodPost, "/api/materials", token, map[string]any{
		"name": "A", "sku": "DUP-1", "supplier": "S",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/api/materials", token, map[string]any{
		"name": "B", "sku": "DUP-1", "supplier": "S",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "SKU already exists", decode(t, w)["message"])
}

func TestCreateMaterial_MalformedNumberParsesToZero(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	w := env.do(t, http.MethodPost, "/api/materials", token, map[string]any{
		"name": "A", "sku": "NUM-1", "supplier": "S", "quantity": "not-a-number",
	})
	require.Equal(t, http.StatusOK, w.Code)
	material := decode(t, w)["material"].(map[string]any)
	assert.Equal(t, float64(0), material["quantity"])
}

func TestUpdateMaterial_LowStockTransitionRecordsAlert(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	w := env.do(t, http.MethodPost, "/api/materials", token, map[string]any{
		"name": "Cell", "sku": "BAT-200", "supplier": "S", "quantity": 100, "minStock": 10,
	})
	require.Equal(t, http.StatusOK, w.Code)
	id := decode(t, w)["material"].(map[string]any)["id"].(string)

	w = env.do(t, http.MethodPut, "/api/materials/"+id, token, map[string]any{"quantity": 5})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/activities", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	activities := decode(t, w)["activities"].([]any)
	require.NotEmpty(t, activities)
	latest := activities[0].(map[string]any)
	assert.Equal(t, "Inventory alert", latest["action"])
	assert.Equal(t, "error", latest["type"])
}

func TestListMaterials_CategoryAndSearch(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	for _, m := range []map[string]any{
		{"name": "Battery Cell", "sku": "BAT-1", "supplier": "CellCo", "category": "battery"},
		{"name": "Drive Motor", "sku": "MTR-1", "supplier": "MotorWorks", "category": "motor"},
	} {
		w := env.do(t, http.MethodPost, "/api/materials", token, m)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := env.do(t, http.MethodGet, "/api/materials?category=battery", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["materials"].([]any), 1)

	w = env.do(t, http.MethodGet, "/api/materials?search=motorworks", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["materials"].([]any), 1)
}
