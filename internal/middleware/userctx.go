package middleware

import (
	"context"
	"net/http"

	"github.com/baharkarakas/expense-api/internal/models"
)

type userKey struct{}

// UserCtx is the identity a caller claims through query parameters. It is not verified.
type UserCtx struct {
	UserID string
	Role   models.Role
}

func WithUser(ctx context.Context, u UserCtx) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}
func FromCtx(ctx context.Context) UserCtx {
	if v := ctx.Value(userKey{}); v != nil {
		if u, ok := v.(UserCtx); ok {
			return u
		}
	}
	return UserCtx{}
}

// Viewer reads ?userId= and ?role= into the request context.
func Viewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		ctx := WithUser(r.Context(), UserCtx{UserID: q.Get("userId"), Role: models.Role(q.Get("role"))})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
