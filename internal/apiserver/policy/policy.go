// Package policy holds the static role to module visibility table. The
// same table drives the navigation shell and the server-side route guard.
package policy

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voltline/evmis/internal/auth/jwt"
	"github.com/voltline/evmis/internal/common/cnst"
)

// moduleRoles maps each module to the roles allowed to view it.
var moduleRoles = map[string][]string{
	cnst.ModuleDashboard:  {"admin", "production_manager", "quality_inspector"},
	cnst.ModuleUsers:      {"admin"},
	cnst.ModuleInventory:  {"admin", "production_manager"},
	cnst.ModuleProduction: {"admin", "production_manager"},
	cnst.ModuleBattery:    {"admin", "production_manager"},
	cnst.ModuleQuality:    {"admin", "quality_inspector"},
	cnst.ModuleCosts:      {"admin", "production_manager"},
	cnst.ModuleReports:    {"admin", "production_manager", "quality_inspector"},
}

// CanAccess reports whether a role may view a module. Unknown modules are
// denied.
func CanAccess(role, module string) bool {
	for _, r := range moduleRoles[module] {
		if r == role {
			return true
		}
	}
	return false
}

// ModulesFor returns the modules visible to a role, in navigation order.
func ModulesFor(role string) []string {
	order := []string{
		cnst.ModuleDashboard,
		cnst.ModuleUsers,
		cnst.ModuleInventory,
		cnst.ModuleProduction,
		cnst.ModuleBattery,
		cnst.ModuleQuality,
		cnst.ModuleCosts,
		cnst.ModuleReports,
	}
	out := make([]string, 0, len(order))
	for _, module := range order {
		if CanAccess(role, module) {
			out = append(out, module)
		}
	}
	return out
}

// Require returns a middleware that rejects requests whose authenticated
// role may not view the module.
func Require(module string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, exists := c.Get("claims")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
			return
		}
		jwtClaims, ok := claims.(*jwt.Claims)
		if !ok || !CanAccess(jwtClaims.Role, module) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Forbidden: role may not access this module"})
			return
		}
		c.Next()
	}
}
