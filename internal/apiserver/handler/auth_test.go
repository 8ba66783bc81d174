package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/voltline/evmis/internal/apiserver/database"
)

func TestLogin_Success(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "alice@test.com", "password123", database.RoleAdmin, database.UserActive)

	w := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "alice@test.com",
		"password": "password123",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Login successful", body["message"])
	assert.NotEmpty(t, body["token"])

	user := body["user"].(map[string]any)
	assert.Equal(t, "alice@test.com", user["email"])
	// Password hash never serialized
	_, leaked := user["password"]
	assert.False(t, leaked)
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "alice@test.com", "password123", database.RoleAdmin, database.UserActive)

	w := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "alice@test.com",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", decode(t, w)["message"])
}

func TestLogin_UnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "nobody@test.com",
		"password": "password123",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_InactiveAccount(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "gone@test.com", "password123", database.RoleAdmin, database.UserInactive)

	w := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "gone@test.com",
		"password": "password123",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Account is inactive. Please contact administrator.", decode(t, w)["message"])
}

func TestLogin_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "a@test.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUserInfo(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.addUser(t, "qi@test.com", "password123", database.RoleQualityInspector, database.UserActive)

	w := env.do(t, http.MethodGet, "/api/auth/userinfo", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	modules := body["modules"].([]any)
	assert.Equal(t, []any{"dashboard", "quality", "reports"}, modules)
}

func TestProtectedRoute_RequiresToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodGet, "/api/users", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPolicy_ForbidsModule(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.addUser(t, "qi@test.com", "password123", database.RoleQualityInspector, database.UserActive)

	// Quality inspectors may not manage users or costs
	w := env.do(t, http.MethodGet, "/api/users", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodGet, "/api/costs", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// But may list inspections
	w = env.do(t, http.MethodGet, "/api/inspections", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
