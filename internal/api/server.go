package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/vaidashi/fastfood-api/pkg/circuitbreaker"
	"github.com/vaidashi/fastfood-api/pkg/logger"
	"github.com/vaidashi/fastfood-api/pkg/metrics"
	"github.com/vaidashi/fastfood-api/pkg/middleware"
)

// Services are the use cases served over HTTP. DeadLetters is nil when
// the outbox is disabled, and its routes are then not mounted.
type Services struct {
	Orders      Orders
	Customers   Customers
	Products    Products
	OrderItems  OrderItems
	DeadLetters DeadLetters
}

// Options tune the HTTP server
type Options struct {
	Port     int
	Breakers []*circuitbreaker.Breaker
	// SwaggerJSON serves the OpenAPI document. Nil disables /swagger.json.
	SwaggerJSON func() (string, error)
}

type Server struct {
	logger      logger.Logger
	router      *mux.Router
	httpServer  *http.Server
	db          Pinger
	svc         Services
	metrics     *metrics.Metrics
	degradation *middleware.GracefulDegradation
	breakers    map[string]*circuitbreaker.Breaker
	swaggerJSON func() (string, error)
}

// NewServer creates the API server and mounts its routes
func NewServer(svc Services, db Pinger, opts Options, m *metrics.Metrics, logger logger.Logger) *Server {
	r := mux.NewRouter()

	if m == nil {
		m = metrics.New("api", nil)
	}

	s := &Server{
		logger:      logger,
		router:      r,
		db:          db,
		svc:         svc,
		metrics:     m,
		breakers:    make(map[string]*circuitbreaker.Breaker),
		swaggerJSON: opts.SwaggerJSON,
		degradation: middleware.NewGracefulDegradation(middleware.DegradationConfig{
			EssentialPrefixes: []string{"/api/v1/health", "/api/v1/admin", "/metrics", "/swagger.json"},
		}, logger),
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", opts.Port),
			Handler:      r,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	for _, b := range append(opts.Breakers, s.degradation.Breaker()) {
		s.breakers[b.Name()] = b
	}

	s.setupRoutes()

	return s
}

// Router exposes the routes, mainly for tests
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// setupRoutes configures all the routes for our API
func (s *Server) setupRoutes() {
	s.router.Use(middleware.Metrics(s.metrics), middleware.Logging(s.logger), s.degradation.Middleware)

	s.router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)

	if s.swaggerJSON != nil {
		s.router.HandleFunc("/swagger.json", s.swaggerHandler).Methods(http.MethodGet)
	}

	api := s.router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", s.healthCheckHandler).Methods(http.MethodGet)

	api.HandleFunc("/orders", s.getOrdersHandler).Methods(http.MethodGet)
	api.HandleFunc("/orders", s.createOrderHandler).Methods(http.MethodPost)
	api.HandleFunc("/orders/open", s.getOpenOrdersHandler).Methods(http.MethodGet)
	api.HandleFunc("/orders/status/{status}", s.getOrdersByStatusHandler).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}", s.getOrderByIDHandler).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}", s.updateOrderHandler).Methods(http.MethodPut)
	api.HandleFunc("/orders/{id}/payment", s.updatePaymentHandler).Methods(http.MethodPut)
	api.HandleFunc("/orders/{id}", s.deleteOrderHandler).Methods(http.MethodDelete)
	api.HandleFunc("/orders/{id}/items", s.getItemsByOrderHandler).Methods(http.MethodGet)

	api.HandleFunc("/order-items", s.getOrderItemsHandler).Methods(http.MethodGet)
	api.HandleFunc("/order-items", s.createOrderItemHandler).Methods(http.MethodPost)
	api.HandleFunc("/order-items/{id}", s.getOrderItemHandler).Methods(http.MethodGet)
	api.HandleFunc("/order-items/{id}", s.updateOrderItemHandler).Methods(http.MethodPut)
	api.HandleFunc("/order-items/{id}", s.deleteOrderItemHandler).Methods(http.MethodDelete)

	api.HandleFunc("/customers", s.getCustomersHandler).Methods(http.MethodGet)
	api.HandleFunc("/customers", s.createCustomerHandler).Methods(http.MethodPost)
	api.HandleFunc("/customers/cpf/{cpf}", s.getCustomerByCPFHandler).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id}", s.getCustomerHandler).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id}", s.updateCustomerHandler).Methods(http.MethodPut)
	api.HandleFunc("/customers/{id}", s.deleteCustomerHandler).Methods(http.MethodDelete)

	api.HandleFunc("/products", s.getProductsHandler).Methods(http.MethodGet)
	api.HandleFunc("/products", s.createProductHandler).Methods(http.MethodPost)
	api.HandleFunc("/products/category/{category}", s.getProductsByCategoryHandler).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", s.getProductHandler).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", s.updateProductHandler).Methods(http.MethodPut)
	api.HandleFunc("/products/{id}", s.deleteProductHandler).Methods(http.MethodDelete)
	api.HandleFunc("/products/{id}/images", s.getProductImagesHandler).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}/images", s.createProductImageHandler).Methods(http.MethodPost)
	api.HandleFunc("/products/{id}/images/{imageId}", s.getProductImageHandler).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}/images/{imageId}", s.updateProductImageHandler).Methods(http.MethodPut)
	api.HandleFunc("/products/{id}/images/{imageId}", s.deleteProductImageHandler).Methods(http.MethodDelete)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/breakers", s.getCircuitBreakersHandler).Methods(http.MethodGet)
	admin.HandleFunc("/breakers/{name}/reset", s.resetCircuitBreakerHandler).Methods(http.MethodPost)

	if s.svc.DeadLetters != nil {
		admin.HandleFunc("/dead-letters", s.getDeadLettersHandler).Methods(http.MethodGet)
		admin.HandleFunc("/dead-letters/{id}", s.getDeadLetterHandler).Methods(http.MethodGet)
		admin.HandleFunc("/dead-letters/{id}/retry", s.retryDeadLetterHandler).Methods(http.MethodPost)
		admin.HandleFunc("/dead-letters/{id}/discard", s.discardDeadLetterHandler).Methods(http.MethodPost)
	}
}

func (s *Server) swaggerHandler(w http.ResponseWriter, _ *http.Request) {
	doc, err := s.swaggerJSON()

	if err != nil {
		s.logger.Error("Failed to read OpenAPI document", "error", err)
		s.respondWithError(w, http.StatusInternalServerError, "OpenAPI document unavailable")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(doc))
}
