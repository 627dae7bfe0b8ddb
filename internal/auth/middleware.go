package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/odontosys/api-clinica/internal/utils"
)

type ctxKey string

const CtxUsuarioID ctxKey = "usuarioID"

// MiddlewareAutenticacao exige um bearer token válido e anexa a identidade ao contexto.
func MiddlewareAutenticacao(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			utils.ResponderErro(w, http.StatusUnauthorized, "Token ausente")
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")
		claims, err := ValidarToken(raw)
		if err != nil {
			utils.ResponderErro(w, http.StatusUnauthorized, "Token inválido")
			return
		}
		ctx := context.WithValue(r.Context(), CtxUsuarioID, claims.UsuarioID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
