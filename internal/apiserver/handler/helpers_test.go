package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/voltline/evmis/internal/apiserver/database"
	"github.com/voltline/evmis/internal/apiserver/middleware"
	"github.com/voltline/evmis/internal/apiserver/policy"
	"github.com/voltline/evmis/internal/auth/jwt"
	"github.com/voltline/evmis/internal/common/cnst"
	"github.com/voltline/evmis/internal/common/config"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	db     database.Database
	jwt    *jwt.Service
	router *gin.Engine
}

// newTestEnv wires an in-memory store behind the same route table the
// server builds, so tests exercise JWT and policy middleware too.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.New(&config.DatabaseConfig{Type: "sqlite", DBName: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	jwtService, err := jwt.NewService(config.JWTConfig{
		SecretKey: "0123456789abcdef0123456789abcdef",
		Duration:  time.Hour,
	})
	require.NoError(t, err)

	h := NewHandler(db, jwtService, zap.NewNop())

	r := gin.New()
	r.POST("/api/auth/login", h.Login)

	api := r.Group("/api")
	api.Use(middleware.JWTAuthMiddleware(jwtService))
	{
		api.GET("/auth/userinfo", h.GetUserInfo)
		api.GET("/dashboard", policy.Require(cnst.ModuleDashboard), h.Dashboard)
		api.GET("/stats/:module", h.ModuleStats)

		users := api.Group("/users", policy.Require(cnst.ModuleUsers))
		{
			users.GET("", h.ListUsers)
			users.POST("", h.CreateUser)
			users.GET("/:id", h.GetUser)
			users.PUT("/:id", h.UpdateUser)
			users.DELETE("/:id", h.DeleteUser)
		}
		materials := api.Group("/materials", policy.Require(cnst.ModuleInventory))
		{
			materials.GET("", h.ListMaterials)
			materials.POST("", h.CreateMaterial)
			materials.PUT("/:id", h.UpdateMaterial)
			materials.DELETE("/:id", h.DeleteMaterial)
		}
		schedules := api.Group("/schedules", policy.Require(cnst.ModuleProduction))
		{
			schedules.GET("", h.ListSchedules)
			schedules.POST("", h.CreateSchedule)
			schedules.PUT("/:id", h.UpdateSchedule)
			schedules.DELETE("/:id", h.DeleteSchedule)
		}
		assemblies := api.Group("/assemblies", policy.Require(cnst.ModuleBattery))
		{
			assemblies.GET("", h.ListAssemblies)
			assemblies.POST("", h.CreateAssembly)
			assemblies.PUT("/:id", h.UpdateAssembly)
			assemblies.DELETE("/:id", h.DeleteAssembly)
		}
		inspections := api.Group("/inspections", policy.Require(cnst.ModuleQuality))
		{
			inspections.GET("", h.ListInspections)
			inspections.POST("", h.CreateInspection)
		}
		costs := api.Group("/costs", policy.Require(cnst.ModuleCosts))
		{
			costs.GET("", h.ListCosts)
			costs.POST("", h.CreateCost)
		}
		api.GET("/metrics", policy.Require(cnst.ModuleCosts), h.ListMetrics)
		api.GET("/activities", policy.Require(cnst.ModuleDashboard), h.ListActivities)
		api.GET("/reports/:type/export", policy.Require(cnst.ModuleReports), h.ExportReport)
	}

	return &testEnv{db: db, jwt: jwtService, router: r}
}

// addUser inserts a user with a bcrypt-hashed password and returns a token
// for them.
func (e *testEnv) addUser(t *testing.T, email, password string, role database.UserRole, status database.UserStatus) (*database.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &database.User{
		Name:     "Test User",
		Email:    email,
		Password: string(hashed),
		Role:     role,
		Status:   status,
	}
	require.NoError(t, e.db.CreateUser(context.Background(), user))

	token, err := e.jwt.GenerateToken(user.ID, user.Email, string(user.Role))
	require.NoError(t, err)
	return user, token
}

func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	_, token := e.addUser(t, "admin@test.com", "password123", database.RoleAdmin, database.UserActive)
	return token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
