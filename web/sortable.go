package web

import (
	"net/http"

	"github.com/zeptools/gw-ordering/ordering"
	"github.com/zeptools/gw-ordering/requests"
)

// Sortable is the per-controller glue between the HTTP layer and the
// ordering core. Conf must be fully registered before serving traffic;
// derive a request-local Conf to override the default order for a
// single request.
type Sortable struct {
	Conf  *ordering.Conf
	Param string // sort parameter name; empty = requests.DefaultSortParam
}

// Order applies the request's sort token to q for the current action.
// ConfigurationError/ResolutionError surface to the caller; anything
// the client got wrong silently falls back to the default order.
func (s *Sortable) Order(r *http.Request, q ordering.Query) error {
	token := requests.SortToken(r, s.Param)
	return s.Conf.Apply(r.Context(), q, token, ActionName(r.Context()))
}
