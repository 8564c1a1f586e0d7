package web

import (
	"context"
	"net/http"

	"github.com/zeptools/gw-ordering/routing"
)

type actionNameKey struct{}

// WithActionName tags ctx with the dispatch action name ("index", "export", ...).
func WithActionName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, actionNameKey{}, name)
}

// ActionName returns the action name set at route registration, or "".
func ActionName(ctx context.Context) string {
	name, _ := ctx.Value(actionNameKey{}).(string)
	return name
}

// ActionWrapper tags every request passing through with the action
// name, so per-action ordering rules can check applicability.
type ActionWrapper struct {
	Name string
}

// Ensure ActionWrapper implements routing.HandlerWrapper
var _ routing.HandlerWrapper = ActionWrapper{}

func (a ActionWrapper) Wrap(inner http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner.ServeHTTP(w, r.WithContext(WithActionName(r.Context(), a.Name)))
	})
}
