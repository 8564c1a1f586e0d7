package requests

import (
	"net/http"
	"strings"
)

// DefaultSortParam is the query-string parameter carrying the sort token.
const DefaultSortParam = "sort"

// SortToken returns the raw client sort token, trimmed. Empty when the
// parameter is absent or blank.
func SortToken(r *http.Request, param string) string {
	if param == "" {
		param = DefaultSortParam
	}
	return strings.TrimSpace(r.URL.Query().Get(param))
}
