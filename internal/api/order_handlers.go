package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vaidashi/fastfood-api/internal/service"
)

// CreateOrderRequest is the body of POST /orders
type CreateOrderRequest struct {
	CustomerID string              `json:"customerId"`
	Items      []service.ItemInput `json:"items"`
}

// UpdateOrderRequest is the body of PUT /orders/{id}. Omitted fields keep
// their current value.
type UpdateOrderRequest struct {
	CustomerID          string `json:"customerId"`
	Status              string `json:"status"`
	Payment             string `json:"payment"`
	PaymentReference    string `json:"paymentReference"`
	ProductionReference string `json:"productionReference"`
}

// UpdatePaymentRequest is the body of PUT /orders/{id}/payment
type UpdatePaymentRequest struct {
	Payment string `json:"payment"`
}

// getOrdersHandler godoc
// @Summary List every order
// @Tags orders
// @Produce json
// @Success 200 {object} ApiResponse
// @Failure 500 {object} ApiResponse "failure"
// @Router /orders [get]
func (s *Server) getOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := s.svc.Orders.AllOrders(r.Context())

	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusOK, orders)
}

// createOrderHandler godoc
// @Summary Place an order
// @Tags orders
// @Accept json
// @Produce json
// @Param order body CreateOrderRequest true "Customer and lines"
// @Success 201 {object} ApiResponse
// @Failure 400 {object} ApiResponse "Invalid customer, product or quantity"
// @Router /orders [post]
func (s *Server) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest

	if !s.decode(w, r, &req) {
		return
	}

	details, err := s.svc.Orders.PlaceOrder(r.Context(), req.CustomerID, req.Items)

	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusCreated, details)
}

// getOpenOrdersHandler returns the kitchen queue
// @Summary Kitchen queue: DONE, then IN_PROGRESS, then RECEIVE, oldest first
// @Tags orders
// @Produce json
// @Success 200 {object} ApiResponse
// @Router /orders/open [get]
func (s *Server) getOpenOrdersHandler(w http.ResponseWriter, r *http.Request) {
	details, err := s.svc.Orders.OpenOrders(r.Context())

	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusOK, details)
}

// getOrdersByStatusHandler godoc
// @Summary Orders in a status
// @Tags orders
// @Produce json
// @Param status path string true "Order status" Enums(RECEIVE, IN_PROGRESS, FINISH, DONE, CANCELED, FAIL)
// @Success 200 {object} ApiResponse
// @Failure 400 {object} ApiResponse "status invalid"
// @Router /orders/status/{status} [get]
func (s *Server) getOrdersByStatusHandler(w http.ResponseWriter, r *http.Request) {
	details, err := s.svc.Orders.OrdersByStatus(r.Context(), mux.Vars(r)["status"])

	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusOK, details)
}

// getOrderByIDHandler godoc
// @Summary Order with its items
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} ApiResponse
// @Failure 404 {object} ApiResponse "id inexistent"
// @Router /orders/{id} [get]
func (s *Server) getOrderByIDHandler(w http.ResponseWriter, r *http.Request) {
	details, err := s.svc.Orders.OrderDetails(r.Context(), mux.Vars(r)["id"])

	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusOK, details)
}

// updateOrderHandler godoc
// @Summary Change status, payment or references
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param change body UpdateOrderRequest true "Fields to change"
// @Success 200 {object} ApiResponse
// @Failure 400 {object} ApiResponse "Invalid pair or order already finalized"
// @Failure 404 {object} ApiResponse "id inexistent"
// @Router /orders/{id} [put]
func (s *Server) updateOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req UpdateOrderRequest

	if !s.decode(w, r, &req) {
		return
	}

	o, err := s.svc.Orders.ChangeOrder(r.Context(), mux.Vars(r)["id"], service.ChangeOrderInput{
		CustomerID:          req.CustomerID,
		Status:              req.Status,
		Payment:             req.Payment,
		PaymentReference:    req.PaymentReference,
		ProductionReference: req.ProductionReference,
	})

	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusOK, o)
}

// updatePaymentHandler godoc
// @Summary Change the payment status
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param payment body UpdatePaymentRequest true "Payment status"
// @Success 200 {object} ApiResponse
// @Failure 400 {object} ApiResponse "Invalid pair or order already finalized"
// @Failure 404 {object} ApiResponse "id inexistent"
// @Router /orders/{id}/payment [put]
func (s *Server) updatePaymentHandler(w http.ResponseWriter, r *http.Request) {
	var req UpdatePaymentRequest

	if !s.decode(w, r, &req) {
		return
	}

	o, err := s.svc.Orders.ChangePayment(r.Context(), mux.Vars(r)["id"], req.Payment)

	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusOK, o)
}

// deleteOrderHandler godoc
// @Summary Remove an order and its items
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} ApiResponse
// @Failure 404 {object} ApiResponse "id inexistent"
// @Router /orders/{id} [delete]
func (s *Server) deleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := s.svc.Orders.RemoveOrder(r.Context(), id); err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusOK, map[string]string{
		"message": "Order removed",
		"id":      id,
	})
}

// getItemsByOrderHandler godoc
// @Summary Lines of an order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} ApiResponse
// @Router /orders/{id}/items [get]
func (s *Server) getItemsByOrderHandler(w http.ResponseWriter, r *http.Request) {
	items, err := s.svc.OrderItems.GetByOrderID(r.Context(), mux.Vars(r)["id"])

	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusOK, items)
}
