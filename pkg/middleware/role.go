package middleware

import (
	"net/http"
	"slices"

	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
	"github.com/vfg2006/sales-performance-api/pkg/log"
)

// Perfis de acesso
const (
	RoleAdmin   = 1
	RoleManager = 2 // gerente: edita desempenho e registra vendas
	RoleViewer  = 3 // somente leitura
)

// RoleMiddleware restringe o acesso aos perfis informados
func RoleMiddleware(allowedRoles ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := log.ForContext(r.Context())

			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logger.Warn("role: tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !slices.Contains(allowedRoles, claims.UserRoleID) {
				logger.WithFields(log.Fields{
					"user_id":   claims.UserID,
					"user_role": claims.UserRoleID,
				}).Warn("role: acesso negado")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(RoleAdmin)
}

// Editors libera administradores e gerentes
func Editors() func(http.Handler) http.Handler {
	return RoleMiddleware(RoleAdmin, RoleManager)
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware(RoleAdmin, RoleManager, RoleViewer)
}
