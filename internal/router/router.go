// Package router registers the HTTP routes and wires the middleware chain.
//
// Route groups mirror the resource surface: /users and /user for accounts,
// /providers for listings, /items for items, /searches and /forms for the
// search variants consumed by the UI.
package router

import (
	"net/http"

	"github.com/opendirectory/providerdir/internal/handler"
	"github.com/opendirectory/providerdir/internal/middleware"
	"github.com/opendirectory/providerdir/internal/server"
	"github.com/labstack/echo/v4"
)

// New builds the Echo engine with the full middleware chain and all route
// groups registered.
//
// Middleware order matters: the request id must exist before the logger is
// built, the New Relic transaction must exist before tracing attributes are
// attached, and the request-scoped logger must exist before anything logs.
func New(s *server.Server, h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	e.Use(middleware.RequestID())
	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(m.Tracing.EnhanceTracing())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Global.CORS())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.Recover())
	e.Use(m.Global.Secure())

	registerSystemRoutes(e, h)
	registerUserRoutes(e, h)
	registerProviderRoutes(e, h)
	registerItemRoutes(e, h)
	registerSearchRoutes(e, h)
	registerFormRoutes(e, h)

	e.Static("/static", "static")

	return e
}

func registerUserRoutes(e *echo.Echo, h *handler.Handlers) {
	// Account operations live under /users, profile operations under /user.
	// The split is ugly but it is the wire format existing clients speak.
	users := e.Group("/users")
	users.POST("/login", handler.Handle(h.Auth.Login, http.StatusOK,
		func() *handler.LoginRequest { return &handler.LoginRequest{} }))
	users.POST("/AddUser", handler.Handle(h.Auth.AddUser, http.StatusCreated,
		func() *handler.AddUserRequest { return &handler.AddUserRequest{} }))

	user := e.Group("/user")
	user.POST("/GetUser", handler.Handle(h.Users.GetUser, http.StatusOK,
		func() *handler.GetUserRequest { return &handler.GetUserRequest{} }))
	user.POST("/EditUser", handler.Handle(h.Users.EditUser, http.StatusOK,
		func() *handler.EditUserRequest { return &handler.EditUserRequest{} }))
}

func registerProviderRoutes(e *echo.Echo, h *handler.Handlers) {
	providers := e.Group("/providers")

	emptyReq := func() *handler.EmptyRequest { return &handler.EmptyRequest{} }

	providers.GET("", handler.Handle(h.Providers.List, http.StatusOK, emptyReq))
	providers.GET("/", handler.Handle(h.Providers.List, http.StatusOK, emptyReq))
	providers.GET("/providers", handler.Handle(h.Providers.List, http.StatusOK, emptyReq))
	providers.GET("/count", handler.Handle(h.Providers.Count, http.StatusOK, emptyReq))

	// Page bounds travel as a single "start-amount" segment, e.g. /0-25.
	providers.GET("/:range", handler.Handle(h.Providers.Page, http.StatusOK,
		func() *handler.PageRequest { return &handler.PageRequest{} }))

	providers.POST("/SearchProviderByName", handler.Handle(h.Providers.SearchByName, http.StatusOK,
		func() *handler.NameFilterRequest { return &handler.NameFilterRequest{} }))
	providers.POST("/SearchProviderByCity", handler.Handle(h.Providers.SearchByCity, http.StatusOK,
		func() *handler.CityFilterRequest { return &handler.CityFilterRequest{} }))
	providers.POST("/SearchProviderByState", handler.Handle(h.Providers.SearchByState, http.StatusOK,
		func() *handler.StateFilterRequest { return &handler.StateFilterRequest{} }))
	providers.POST("/SearchProviderByItem", handler.Handle(h.Providers.SearchByItem, http.StatusOK,
		func() *handler.ItemFilterRequest { return &handler.ItemFilterRequest{} }))

	providers.POST("/AddProvider", handler.Handle(h.Providers.AddProvider, http.StatusCreated,
		func() *handler.AddProviderRequest { return &handler.AddProviderRequest{} }))
	providers.POST("/GetSingleProvider", handler.Handle(h.Providers.GetSingleProvider, http.StatusOK,
		func() *handler.GetSingleProviderRequest { return &handler.GetSingleProviderRequest{} }))
	providers.POST("/GetProvider", handler.Handle(h.Providers.GetProvider, http.StatusOK,
		func() *handler.ProviderIDRequest { return &handler.ProviderIDRequest{} }))
	providers.POST("/EditProvider", handler.Handle(h.Providers.EditProvider, http.StatusOK,
		func() *handler.EditProviderRequest { return &handler.EditProviderRequest{} }))
	providers.POST("/DeleteProvider", handler.Handle(h.Providers.DeleteProvider, http.StatusOK,
		func() *handler.ProviderIDRequest { return &handler.ProviderIDRequest{} }))
}

func registerItemRoutes(e *echo.Echo, h *handler.Handlers) {
	items := e.Group("/items")

	items.GET("/:range", handler.Handle(h.Items.Page, http.StatusOK,
		func() *handler.ItemsPageRequest { return &handler.ItemsPageRequest{} }))

	items.POST("/ByProvider", handler.Handle(h.Items.ByProvider, http.StatusOK,
		func() *handler.ItemsByProviderRequest { return &handler.ItemsByProviderRequest{} }))
	items.POST("/Item", handler.Handle(h.Items.Item, http.StatusOK,
		func() *handler.ItemIDRequest { return &handler.ItemIDRequest{} }))
	items.POST("/AddItem", handler.Handle(h.Items.AddItem, http.StatusCreated,
		func() *handler.AddItemRequest { return &handler.AddItemRequest{} }))
	items.POST("/EditItem", handler.Handle(h.Items.EditItem, http.StatusOK,
		func() *handler.EditItemRequest { return &handler.EditItemRequest{} }))
	items.POST("/DeactivateItem", handler.Handle(h.Items.DeactivateItem, http.StatusOK,
		func() *handler.DeactivateItemRequest { return &handler.DeactivateItemRequest{} }))
}

func registerSearchRoutes(e *echo.Echo, h *handler.Handlers) {
	searches := e.Group("/searches")

	searches.POST("/Name", handler.Handle(h.Searches.Name, http.StatusOK,
		func() *handler.NameFilterRequest { return &handler.NameFilterRequest{} }))
	searches.POST("/City", handler.Handle(h.Searches.City, http.StatusOK,
		func() *handler.CityFilterRequest { return &handler.CityFilterRequest{} }))
	searches.POST("/State", handler.Handle(h.Searches.State, http.StatusOK,
		func() *handler.StateFilterRequest { return &handler.StateFilterRequest{} }))
	searches.POST("/Item", handler.Handle(h.Searches.Item, http.StatusOK,
		func() *handler.ItemFilterRequest { return &handler.ItemFilterRequest{} }))
}

func registerFormRoutes(e *echo.Echo, h *handler.Handlers) {
	forms := e.Group("/forms")

	// The city and state segments are lowercase on the wire; existing form
	// clients depend on the exact casing.
	forms.POST("/ProvidersSearch/Name", handler.Handle(h.Forms.SearchName, http.StatusOK,
		func() *handler.NameFilterRequest { return &handler.NameFilterRequest{} }))
	forms.POST("/ProvidersSearch/city", handler.Handle(h.Forms.SearchCity, http.StatusOK,
		func() *handler.CityFilterRequest { return &handler.CityFilterRequest{} }))
	forms.POST("/ProvidersSearch/state", handler.Handle(h.Forms.SearchState, http.StatusOK,
		func() *handler.StateFilterRequest { return &handler.StateFilterRequest{} }))
	forms.POST("/AddItem", handler.Handle(h.Forms.AddItem, http.StatusCreated,
		func() *handler.FormAddItemRequest { return &handler.FormAddItemRequest{} }))
}
