package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vaidashi/fastfood-api/internal/service"
)

// getCustomersHandler godoc
// @Summary List customers
// @Tags customers
// @Produce json
// @Success 200 {object} ApiResponse
// @Router /customers [get]
func (s *Server) getCustomersHandler(w http.ResponseWriter, r *http.Request) {
	customers, err := s.svc.Customers.GetAll(r.Context())

	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusOK, customers)
}

// getCustomerHandler godoc
// @Summary Customer by ID
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} ApiResponse
// @Failure 404 {object} ApiResponse "id inexistent"
// @Router /customers/{id} [get]
func (s *Server) getCustomerHandler(w http.ResponseWriter, r *http.Request) {
	c, err := s.svc.Customers.GetByID(r.Context(), mux.Vars(r)["id"])

	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusOK, c)
}

// getCustomerByCPFHandler godoc
// @Summary Customer by CPF
// @Tags customers
// @Produce json
// @Param cpf path string true "CPF digits"
// @Success 200 {object} ApiResponse
// @Failure 404 {object} ApiResponse "id inexistent"
// @Router /customers/cpf/{cpf} [get]
func (s *Server) getCustomerByCPFHandler(w http.ResponseWriter, r *http.Request) {
	c, err := s.svc.Customers.GetByCPF(r.Context(), mux.Vars(r)["cpf"])

	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusOK, c)
}

// createCustomerHandler godoc
// @Summary Register a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body service.CustomerInput true "Customer"
// @Success 201 {object} ApiResponse
// @Failure 400 {object} ApiResponse "name or cpf invalid"
// @Failure 409 {object} ApiResponse "cpf already registered"
// @Router /customers [post]
func (s *Server) createCustomerHandler(w http.ResponseWriter, r *http.Request) {
	var in service.CustomerInput

	if !s.decode(w, r, &in) {
		return
	}

	c, err := s.svc.Customers.Create(r.Context(), in)

	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusCreated, c)
}

// updateCustomerHandler godoc
// @Summary Update a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param customer body service.CustomerInput true "Customer"
// @Success 200 {object} ApiResponse
// @Failure 400 {object} ApiResponse "name or cpf invalid"
// @Failure 404 {object} ApiResponse "id inexistent"
// @Router /customers/{id} [put]
func (s *Server) updateCustomerHandler(w http.ResponseWriter, r *http.Request) {
	var in service.CustomerInput

	if !s.decode(w, r, &in) {
		return
	}

	c, err := s.svc.Customers.Update(r.Context(), mux.Vars(r)["id"], in)

	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusOK, c)
}

// deleteCustomerHandler godoc
// @Summary Remove a customer
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} ApiResponse
// @Failure 404 {object} ApiResponse "id inexistent"
// @Router /customers/{id} [delete]
func (s *Server) deleteCustomerHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := s.svc.Customers.Remove(r.Context(), id); err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusOK, map[string]string{"message": "Customer removed", "id": id})
}

// getProductsHandler godoc
// @Summary List the menu
// @Tags products
// @Produce json
// @Success 200 {object} ApiResponse
// @Router /products [get]
func (s *Server) getProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := s.svc.Products.GetAll(r.Context())

	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusOK, products)
}

// getProductsByCategoryHandler godoc
// @Summary Products in a category
// @Tags products
// @Produce json
// @Param category path string true "Category" Enums(ACCOMPANIMENT, DESSERT, DRINK, SNACK)
// @Success 200 {object} ApiResponse
// @Failure 400 {object} ApiResponse "category invalid"
// @Router /products/category/{category} [get]
func (s *Server) getProductsByCategoryHandler(w http.ResponseWriter, r *http.Request) {
	products, err := s.svc.Products.GetByCategory(r.Context(), mux.Vars(r)["category"])

	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusOK, products)
}

// getProductHandler godoc
// @Summary Product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ApiResponse
// @Failure 404 {object} ApiResponse "id inexistent"
// @Router /products/{id} [get]
func (s *Server) getProductHandler(w http.ResponseWriter, r *http.Request) {
	p, err := s.svc.Products.GetByID(r.Context(), mux.Vars(r)["id"])

	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusOK, p)
}

// createProductHandler godoc
// @Summary Add a product
// @Tags products
// @Accept json
// @Produce json
// @Param product body service.ProductInput true "Product"
// @Success 201 {object} ApiResponse
// @Failure 400 {object} ApiResponse "name, price or category invalid"
// @Router /products [post]
func (s *Server) createProductHandler(w http.ResponseWriter, r *http.Request) {
	var in service.ProductInput

	if !s.decode(w, r, &in) {
		return
	}

	p, err := s.svc.Products.Create(r.Context(), in)

	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusCreated, p)
}

// updateProductHandler godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body service.ProductInput true "Product"
// @Success 200 {object} ApiResponse
// @Failure 400 {object} ApiResponse "name, price or category invalid"
// @Failure 404 {object} ApiResponse "id inexistent"
// @Router /products/{id} [put]
func (s *Server) updateProductHandler(w http.ResponseWriter, r *http.Request) {
	var in service.ProductInput

	if !s.decode(w, r, &in) {
		return
	}

	p, err := s.svc.Products.Update(r.Context(), mux.Vars(r)["id"], in)

	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusOK, p)
}

// deleteProductHandler godoc
// @Summary Remove a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ApiResponse
// @Failure 404 {object} ApiResponse "id inexistent"
// @Router /products/{id} [delete]
func (s *Server) deleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := s.svc.Products.Remove(r.Context(), id); err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusOK, map[string]string{"message": "Product removed", "id": id})
}

// getProductImagesHandler godoc
// @Summary Images of a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ApiResponse
// @Failure 400 {object} ApiResponse "productId invalid"
// @Router /products/{id}/images [get]
func (s *Server) getProductImagesHandler(w http.ResponseWriter, r *http.Request) {
	images, err := s.svc.Products.Images(r.Context(), mux.Vars(r)["id"])

	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusOK, images)
}

// getProductImageHandler godoc
// @Summary Product image by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Param imageId path string true "Image ID"
// @Success 200 {object} ApiResponse
// @Failure 404 {object} ApiResponse "product image inexistent"
// @Router /products/{id}/images/{imageId} [get]
func (s *Server) getProductImageHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	img, err := s.svc.Products.Image(r.Context(), vars["id"], vars["imageId"])

	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusOK, img)
}

// createProductImageHandler godoc
// @Summary Attach an image to a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param image body service.ImageInput true "Image"
// @Success 201 {object} ApiResponse
// @Failure 400 {object} ApiResponse "name, size, type and base64 are required"
// @Router /products/{id}/images [post]
func (s *Server) createProductImageHandler(w http.ResponseWriter, r *http.Request) {
	var in service.ImageInput

	if !s.decode(w, r, &in) {
		return
	}

	img, err := s.svc.Products.AddImage(r.Context(), mux.Vars(r)["id"], in)

	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusCreated, img)
}

// updateProductImageHandler godoc
// @Summary Replace a product image
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param imageId path string true "Image ID"
// @Param image body service.ImageInput true "Image"
// @Success 200 {object} ApiResponse
// @Failure 400 {object} ApiResponse "name, size, type and base64 are required"
// @Failure 404 {object} ApiResponse "product image inexistent"
// @Router /products/{id}/images/{imageId} [put]
func (s *Server) updateProductImageHandler(w http.ResponseWriter, r *http.Request) {
	var in service.ImageInput

	if !s.decode(w, r, &in) {
		return
	}

	vars := mux.Vars(r)

	img, err := s.svc.Products.UpdateImage(r.Context(), vars["id"], vars["imageId"], in)

	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusOK, img)
}

// deleteProductImageHandler godoc
// @Summary Remove a product image
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Param imageId path string true "Image ID"
// @Success 200 {object} ApiResponse
// @Failure 404 {object} ApiResponse "product image inexistent"
// @Router /products/{id}/images/{imageId} [delete]
func (s *Server) deleteProductImageHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := s.svc.Products.RemoveImage(r.Context(), vars["id"], vars["imageId"]); err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusOK, map[string]string{"message": "Product image removed", "id": vars["imageId"]})
}

// getOrderItemsHandler godoc
// @Summary List every order line
// @Tags order-items
// @Produce json
// @Success 200 {object} ApiResponse
// @Router /order-items [get]
func (s *Server) getOrderItemsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := s.svc.OrderItems.GetAll(r.Context())

	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusOK, items)
}

// getOrderItemHandler godoc
// @Summary Order line by ID
// @Tags order-items
// @Produce json
// @Param id path string true "Order item ID"
// @Success 200 {object} ApiResponse
// @Failure 404 {object} ApiResponse "id inexistent"
// @Router /order-items/{id} [get]
func (s *Server) getOrderItemHandler(w http.ResponseWriter, r *http.Request) {
	item, err := s.svc.OrderItems.GetByID(r.Context(), mux.Vars(r)["id"])

	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusOK, item)
}

// createOrderItemHandler godoc
// @Summary Add a line to an order
// @Tags order-items
// @Accept json
// @Produce json
// @Param item body service.OrderItemInput true "Order line"
// @Success 201 {object} ApiResponse
// @Failure 400 {object} ApiResponse "orderId or productId invalid"
// @Router /order-items [post]
func (s *Server) createOrderItemHandler(w http.ResponseWriter, r *http.Request) {
	var in service.OrderItemInput

	if !s.decode(w, r, &in) {
		return
	}

	item, err := s.svc.OrderItems.Create(r.Context(), in)

	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusCreated, item)
}

// updateOrderItemHandler godoc
// @Summary Change price, quantity or notes of a line
// @Tags order-items
// @Accept json
// @Produce json
// @Param id path string true "Order item ID"
// @Param item body service.OrderItemInput true "Order line"
// @Success 200 {object} ApiResponse
// @Failure 400 {object} ApiResponse "quantity invalid"
// @Failure 404 {object} ApiResponse "id inexistent"
// @Router /order-items/{id} [put]
func (s *Server) updateOrderItemHandler(w http.ResponseWriter, r *http.Request) {
	var in service.OrderItemInput

	if !s.decode(w, r, &in) {
		return
	}

	item, err := s.svc.OrderItems.Update(r.Context(), mux.Vars(r)["id"], in)

	if err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusOK, item)
}

// deleteOrderItemHandler godoc
// @Summary Remove an order line
// @Tags order-items
// @Produce json
// @Param id path string true "Order item ID"
// @Success 200 {object} ApiResponse
// @Failure 404 {object} ApiResponse "id inexistent"
// @Router /order-items/{id} [delete]
func (s *Server) deleteOrderItemHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := s.svc.OrderItems.Remove(r.Context(), id); err != nil {
		s.respondWithServiceError(w, r, err)
		return
	}

	s.respondWithData(w, http.StatusOK, map[string]string{"message": "Order item removed", "id": id})
}
