package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeptools/gw-ordering/db/sqldb"
	"github.com/zeptools/gw-ordering/ordering"
	"github.com/zeptools/gw-ordering/requests"
	"github.com/zeptools/gw-ordering/routing"
	"github.com/zeptools/gw-ordering/web"
)

func postsConf() *ordering.Conf {
	c := ordering.NewConf()
	c.Register(ordering.Rule{Alias: "creator", Attr: "creator.last_name"})
	c.Register(ordering.Rule{Alias: "title", Attr: "title", Only: []string{"export"}})
	c.SetDefaultOrder("-updated_at")
	return c
}

func postsSchema() *sqldb.Schema {
	return sqldb.NewSchema("posts").BelongsTo("creator", "users", "creator_id")
}

// listHandler builds the query an index/export action would run and
// echoes its SQL, so tests can see exactly what ordering produced.
func listHandler(t *testing.T, sortable *web.Sortable) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := sqldb.NewSelect(postsSchema())
		if err := sortable.Order(r, q); err != nil {
			t.Errorf("ordering failed: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		limit, offset := requests.PaginationParams(r, 20, 100).LimitOffset()
		q.Limit(limit).Offset(offset)
		_, _ = w.Write([]byte(q.SQL('?')))
	}
}

func newTestRouter(t *testing.T, sortable *web.Sortable) *routing.BaseRouter {
	router := &routing.BaseRouter{ServeMux: http.NewServeMux()}
	router.Group("/posts", func(g *routing.RouteGroup) {
		g.HandleFunc("GET /", listHandler(t, sortable), web.ActionWrapper{Name: "index"})
		g.HandleFunc("GET /export", listHandler(t, sortable), web.ActionWrapper{Name: "export"})
	})
	return router
}

func get(router http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", target, nil))
	return rec
}

func TestSortableOrdersByRegisteredAlias(t *testing.T) {
	router := newTestRouter(t, &web.Sortable{Conf: postsConf()})
	rec := get(router, "/posts/?sort=-creator")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t,
		"SELECT * FROM posts"+
			" LEFT OUTER JOIN users ON posts.creator_id = users.id"+
			" ORDER BY users.last_name desc LIMIT 20",
		rec.Body.String())
}

func TestSortableFallsBackToDefaultOrder(t *testing.T) {
	router := newTestRouter(t, &web.Sortable{Conf: postsConf()})

	// no sort parameter
	rec := get(router, "/posts/?page=2&per_page=10")
	require.Equal(t, "SELECT * FROM posts ORDER BY posts.updated_at desc LIMIT 10 OFFSET 10",
		rec.Body.String())

	// unknown alias
	rec = get(router, "/posts/?sort=wat")
	require.Equal(t, "SELECT * FROM posts ORDER BY posts.updated_at desc LIMIT 20",
		rec.Body.String())
}

func TestSortablePerActionApplicability(t *testing.T) {
	router := newTestRouter(t, &web.Sortable{Conf: postsConf()})

	// `title` only applies to the export action
	rec := get(router, "/posts/?sort=title")
	require.Equal(t, "SELECT * FROM posts ORDER BY posts.updated_at desc LIMIT 20",
		rec.Body.String())

	rec = get(router, "/posts/export?sort=title")
	require.Equal(t, "SELECT * FROM posts ORDER BY posts.title asc LIMIT 20",
		rec.Body.String())
}

func TestSortableCustomParamName(t *testing.T) {
	router := newTestRouter(t, &web.Sortable{Conf: postsConf(), Param: "order_by"})
	rec := get(router, "/posts/?order_by=creator&sort=ignored")
	require.Equal(t,
		"SELECT * FROM posts"+
			" LEFT OUTER JOIN users ON posts.creator_id = users.id"+
			" ORDER BY users.last_name asc LIMIT 20",
		rec.Body.String())
}

func TestSortableRequestLocalDefaultOverride(t *testing.T) {
	shared := postsConf()

	// a handler can derive a request-local conf right before applying,
	// leaving the shared conf untouched for concurrent requests
	reqConf := shared.Derive()
	reqConf.SetDefaultOrder("creator.last_name")
	sortable := &web.Sortable{Conf: reqConf}

	router := newTestRouter(t, sortable)
	rec := get(router, "/posts/")
	require.Equal(t,
		"SELECT * FROM posts"+
			" LEFT OUTER JOIN users ON posts.creator_id = users.id"+
			" ORDER BY users.last_name asc LIMIT 20",
		rec.Body.String())

	require.Equal(t, []string{"-updated_at"}, shared.DefaultOrder())
}

func TestActionNameContext(t *testing.T) {
	rec := httptest.NewRecorder()
	var seen string
	handler := web.ActionWrapper{Name: "index"}.Wrap(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = web.ActionName(r.Context())
	}))
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	require.Equal(t, "index", seen)

	require.Empty(t, web.ActionName(httptest.NewRequest("GET", "/", nil).Context()))
}

func TestRecoverWrapperReturnsJSONError(t *testing.T) {
	router := &routing.BaseRouter{ServeMux: http.NewServeMux()}
	router.HandleFunc("GET /boom", func(http.ResponseWriter, *http.Request) {
		panic("kaput")
	}, wrapperFunc(routing.RecoverWrapper))

	rec := get(router, "/boom")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"type":"error","message":"internal server error","code":0}`, rec.Body.String())
}

// wrapperFunc adapts a plain middleware func to routing.HandlerWrapper.
type wrapperFunc func(http.Handler) http.Handler

func (f wrapperFunc) Wrap(inner http.Handler) http.Handler { return f(inner) }
