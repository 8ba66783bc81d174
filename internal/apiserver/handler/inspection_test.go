package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInspection_PassAutoApproves(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	w := env.do(t, http.MethodPost, "/api/inspections", token, map[string]any{
		"vehicleId": "EV-2024-001",
		"inspector": "Kim",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Inspection passed - Auto approved", body["message"])

	inspection := body["inspection"].(map[string]any)
	assert.Equal(t, "visual", inspection["inspectionType"])
	assert.Equal(t, "pass", inspection["result"])
	assert.Equal(t, "EV-Compact", inspection["vehicleModel"])
	assert.Equal(t, true, inspection["approved"])
}

func TestCreateInspection_FailRequiresDefectDescription(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	w := env.do(t, http.MethodPost, "/api/inspections", token, map[string]any{
		"vehicleId": "EV-2024-001",
		"inspector": "Kim",
		"result":    "fail",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Defect description is required for failed inspections", decode(t, w)["message"])
}

func TestCreateInspection_FailRecordsWarning(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	w := env.do(t, http.MethodPost, "/api/inspections", token, map[string]any{
		"vehicleId":         "EV-2024-002",
		"inspector":         "Kim",
		"inspectionType":    "safety",
		"result":            "fail",
		"defectDescription": "Loose harness",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Inspection recorded - Requires review", body["message"])

	inspection := body["inspection"].(map[string]any)
	assert.Equal(t, false, inspection["approved"])
	assert.Equal(t, "Loose harness", inspection["defectDescription"])

	w = env.do(t, http.MethodGet, "/api/activities", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	activities := decode(t, w)["activities"].([]any)
	require.NotEmpty(t, activities)
	latest := activities[0].(map[string]any)
	assert.Equal(t, "Quality inspection", latest["action"])
	assert.Equal(t, "warning", latest["type"])
}

func TestCreateInspection_MissingFields(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	w := env.do(t, http.MethodPost, "/api/inspections", token, map[string]any{"vehicleId": "EV-2024-001"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Vehicle ID and inspector are required", decode(t, w)["message"])
}

func TestListInspections_ResultFilter(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	for _, payload := range []map[string]any{
		{"vehicleId": "EV-1", "inspector": "Kim"},
		{"vehicleId": "EV-2", "inspector": "Kim", "result": "fail", "defectDescription": "Crack"},
	} {
		w := env.do(t, http.MethodPost, "/api/inspections", token, payload)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := env.do(t, http.MethodGet, "/api/inspections?result=fail", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["inspections"].([]any), 1)
}

func TestCreateCost_ComputesTotal(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	// Total in the payload is ignored; the server recomputes it
	w := env.do(t, http.MethodPost, "/api/costs", token, map[string]any{
		"vehicleId":    "EV-2024-001",
		"materialCost": "15000",
		"laborCost":    4000,
		"overheadCost": 2100,
		"totalCost":    999999,
	})

	require.Equal(t, http.StatusOK, w.Code)
	cost := decode(t, w)["cost"].(map[string]any)
	assert.Equal(t, float64(21100), cost["totalCost"])
	assert.Equal(t, "EV-Compact", cost["vehicleModel"])
}

func TestCreateCost_RequiresVehicleID(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	w := env.do(t, http.MethodPost, "/api/costs", token, map[string]any{"materialCost": 100})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Vehicle ID is required", decode(t, w)["message"])
}
