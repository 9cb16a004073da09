package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/wwegiel111/Elektro-shop/pkg/domain/model"
	"github.com/wwegiel111/Elektro-shop/pkg/domain/service"
	"github.com/wwegiel111/Elektro-shop/pkg/infrastructure/sqlscript"
)

// Exporter receives a snapshot of the store on admin request.
type Exporter interface {
	ExportCatalog(ctx context.Context, products []model.Product) error
	ExportOrders(ctx context.Context, orders []model.Order) error
}

type Handler struct {
	// mu serializes every call into the store, which is single-threaded.
	mu       sync.Mutex
	store    service.Store
	creds    service.CredentialChecker
	exporter Exporter
}

type cartResponse struct {
	Items []model.CartLine `json:"items"`
	Total decimal.Decimal  `json:"total"`
	Count int              `json:"count"`
}

type sessionResponse struct {
	User *model.Identity `json:"user"`
	View model.View      `json:"view"`
}

// Router exposes the store over HTTP. exporter may be nil, which disables /admin/export.
func Router(store service.Store, creds service.CredentialChecker, exporter Exporter) http.Handler {
	h := &Handler{store: store, creds: creds, exporter: exporter}

	r := mux.NewRouter()
	s := r.PathPrefix("/api/v1").Subrouter()

	s.HandleFunc("/products", h.serialized(h.listProducts)).Methods(http.MethodGet)
	s.HandleFunc("/products/featured", h.serialized(h.featuredProducts)).Methods(http.MethodGet)
	s.HandleFunc("/products", h.serialized(h.replaceCatalog)).Methods(http.MethodPut)
	s.HandleFunc("/products/{id:[0-9]+}", h.serialized(h.deleteProduct)).Methods(http.MethodDelete)

	s.HandleFunc("/cart", h.serialized(h.getCart)).Methods(http.MethodGet)
	s.HandleFunc("/cart", h.serialized(h.clearCart)).Methods(http.MethodDelete)
	s.HandleFunc("/cart/items", h.serialized(h.addItem)).Methods(http.MethodPost)
	s.HandleFunc("/cart/items/{id:[0-9]+}", h.serialized(h.setQuantity)).Methods(http.MethodPut)
	s.HandleFunc("/cart/items/{id:[0-9]+}", h.serialized(h.removeItem)).Methods(http.MethodDelete)

	s.HandleFunc("/session", h.serialized(h.getSession)).Methods(http.MethodGet)
	s.HandleFunc("/session/login", h.serialized(h.login)).Methods(http.MethodPost)
	s.HandleFunc("/session/logout", h.serialized(h.logout)).Methods(http.MethodPost)
	s.HandleFunc("/session/view", h.serialized(h.setView)).Methods(http.MethodPut)

	s.HandleFunc("/orders", h.serialized(h.placeOrder)).Methods(http.MethodPost)
	s.HandleFunc("/orders", h.serialized(h.listOrders)).Methods(http.MethodGet)
	s.HandleFunc("/orders/{id}", h.serialized(h.setOrderStatus)).Methods(http.MethodPatch)

	s.HandleFunc("/admin/sql", h.serialized(h.sqlScript)).Methods(http.MethodGet)
	s.HandleFunc("/admin/export", h.export).Methods(http.MethodPost)

	return logMiddleware(h.withStore(r))
}

func (h *Handler) withStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(service.WithStore(r.Context(), h.store)))
	})
}

func (h *Handler) serialized(fn http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.mu.Lock()
		defer h.mu.Unlock()
		fn(w, r)
	}
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseCatalogFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, service.FromContext(r.Context()).QueryCatalog(filter))
}

func (h *Handler) featuredProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, service.FromContext(r.Context()).Featured())
}

func (h *Handler) replaceCatalog(w http.ResponseWriter, r *http.Request) {
	store := service.FromContext(r.Context())
	if !requireAdmin(w, store) {
		return
	}
	var products []model.Product
	if err := json.NewDecoder(r.Body).Decode(&products); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := model.ValidateCatalog(products); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	store.ReplaceCatalog(products)
	writeJSON(w, http.StatusOK, store.Products())
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	store := service.FromContext(r.Context())
	if !requireAdmin(w, store) {
		return
	}
	store.DeleteProduct(pathID(r))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, cartOf(service.FromContext(r.Context())))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	store := service.FromContext(r.Context())
	store.ClearCart()
	writeJSON(w, http.StatusOK, cartOf(store))
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID int `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	store := service.FromContext(r.Context())
	product, ok := store.Product(body.ProductID)
	if !ok {
		writeError(w, http.StatusNotFound, errProductNotFound)
		return
	}
	store.AddItem(product)
	writeJSON(w, http.StatusOK, cartOf(store))
}

func (h *Handler) setQuantity(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	store := service.FromContext(r.Context())
	store.SetQuantity(pathID(r), body.Quantity)
	writeJSON(w, http.StatusOK, cartOf(store))
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	store := service.FromContext(r.Context())
	store.RemoveItem(pathID(r))
	writeJSON(w, http.StatusOK, cartOf(store))
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionOf(service.FromContext(r.Context())))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	role, err := h.creds.Check(body.Username, body.Password)
	if err != nil {
		log.WithField("username", body.Username).Warn("login rejected")
		writeError(w, http.StatusUnauthorized, err)
		return
	}

	store := service.FromContext(r.Context())
	store.Login(body.Username, role)
	writeJSON(w, http.StatusOK, sessionOf(store))
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	store := service.FromContext(r.Context())
	store.Logout()
	writeJSON(w, http.StatusOK, sessionOf(store))
}

func (h *Handler) setView(w http.ResponseWriter, r *http.Request) {
	var body struct {
		View string `json:"view"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	view, err := model.ParseView(body.View)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	store := service.FromContext(r.Context())
	if !model.CanAccess(store.Identity(), view) {
		writeError(w, http.StatusForbidden, errForbidden)
		return
	}
	store.SetView(view)
	writeJSON(w, http.StatusOK, sessionOf(store))
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	store := service.FromContext(r.Context())
	if len(store.Cart()) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if store.Identity() == nil && body.Email == "" {
		writeError(w, http.StatusBadRequest, errEmailRequired)
		return
	}

	writeJSON(w, http.StatusCreated, store.PlaceOrder(body.Email))
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	store := service.FromContext(r.Context())
	identity := store.Identity()
	switch {
	case identity.IsAdmin():
		writeJSON(w, http.StatusOK, store.Orders())
	case identity != nil:
		orders := store.OrdersFor(identity.ID)
		if orders == nil {
			orders = []model.Order{}
		}
		writeJSON(w, http.StatusOK, orders)
	default:
		writeError(w, http.StatusForbidden, errForbidden)
	}
}

func (h *Handler) setOrderStatus(w http.ResponseWriter, r *http.Request) {
	store := service.FromContext(r.Context())
	if !requireAdmin(w, store) {
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	status, err := model.ParseOrderStatus(body.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	switch err = store.SetOrderStatus(mux.Vars(r)["id"], status); {
	case errors.Is(err, model.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, model.ErrInvalidStatusTransition):
		writeError(w, http.StatusConflict, err)
	case err != nil:
		writeError(w, http.StatusInternalServerError, err)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) sqlScript(w http.ResponseWriter, r *http.Request) {
	store := service.FromContext(r.Context())
	if !requireAdmin(w, store) {
		return
	}
	script, err := sqlscript.Generate(store.Products())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err = io.WriteString(w, script); err != nil {
		log.WithField("err", err).Error("write response status")
	}
}

// export snapshots the store under the lock and talks to the database without it.
func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	if h.exporter == nil {
		writeError(w, http.StatusNotImplemented, errExportDisabled)
		return
	}

	h.mu.Lock()
	store := service.FromContext(r.Context())
	isAdmin := store.Identity().IsAdmin()
	products, orders := store.Products(), store.Orders()
	h.mu.Unlock()

	if !isAdmin {
		writeError(w, http.StatusForbidden, errForbidden)
		return
	}
	if err := h.exporter.ExportCatalog(r.Context(), products); err != nil {
		log.WithError(err).Error("export catalog")
		writeError(w, http.StatusBadGateway, err)
		return
	}
	if err := h.exporter.ExportOrders(r.Context(), orders); err != nil {
		log.WithError(err).Error("export orders")
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"products": len(products), "orders": len(orders)})
}

func logMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)
		log.WithFields(log.Fields{
			"method":     r.Method,
			"url":        r.URL,
			"remoteAddr": r.RemoteAddr,
			"userAgent":  r.UserAgent(),
			"requestID":  requestID,
		}).Info("got a new request")
		h.ServeHTTP(w, r)
	})
}

func cartOf(store service.Store) cartResponse {
	items := store.Cart()
	if items == nil {
		items = []model.CartLine{}
	}
	return cartResponse{Items: items, Total: store.Total(), Count: store.ItemCount()}
}

func sessionOf(store service.Store) sessionResponse {
	return sessionResponse{User: store.Identity(), View: store.View()}
}

func requireAdmin(w http.ResponseWriter, store service.Store) bool {
	if !store.Identity().IsAdmin() {
		writeError(w, http.StatusForbidden, errForbidden)
		return false
	}
	return true
}

// pathID reads the numeric {id} route variable; the route pattern guarantees digits.
func pathID(r *http.Request) int {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	return id
}
