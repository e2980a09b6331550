package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/openshelf/openshelf-server/internal/api/http/handler"
	"github.com/openshelf/openshelf-server/internal/logger"
	"github.com/openshelf/openshelf-server/internal/model"
)

// Guard validates bearer tokens against a policy.
type Guard interface {
	Require(ctx context.Context, raw string, policy model.TokenPolicy) (model.Identity, error)
}

// Authenticate validates bearer tokens and injects the caller identity
// into the request context.
type Authenticate struct {
	guard          Guard
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(guard Guard, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{guard: guard, contextManager: contextManager, logger: logger}
}

// Require builds a middleware enforcing the given policy. A request that
// fails any check is rejected before the handler runs.
func (m *Authenticate) Require(policy model.TokenPolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := m.guard.Require(r.Context(), bearerToken(r), policy)
			if err != nil {
				m.logger.Debug("Authenticate middleware: request rejected",
					"path", r.URL.Path,
					"error", err.Error())
				handler.WriteError(w, err)
				return
			}

			ctx := m.contextManager.SetIdentityToContext(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
