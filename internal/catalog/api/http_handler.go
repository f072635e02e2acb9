package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/storefront-demo/internal/catalog/domain"
	"github.com/ridloal/storefront-demo/internal/catalog/repository"
	"github.com/ridloal/storefront-demo/internal/catalog/service"
	"github.com/ridloal/storefront-demo/internal/platform/logger"
)

type ProductHandler struct {
	catalogService service.CatalogService
}

func NewProductHandler(cs service.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: cs}
}

func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup) {
	productRoutes := router.Group("/products")
	{
		productRoutes.GET("", h.ListProducts)
		productRoutes.GET("/:id", h.GetProduct)

		// Operasi admin; mode admin adalah toggle sisi klien, tanpa auth
		productRoutes.POST("", h.CreateProduct)
		productRoutes.PUT("/:id", h.UpdateProduct)
		productRoutes.DELETE("/:id", h.DeleteProduct)
		productRoutes.POST("/:id/discounts", h.AddDiscount)
		productRoutes.DELETE("/:id/discounts/:index", h.RemoveDiscount)
	}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	searchTerm := c.Query("search")
	isAdmin := c.Query("admin") == "true"

	listings, err := h.catalogService.ListProducts(c.Request.Context(), searchTerm, isAdmin)
	if err != nil {
		logger.Error("Hdl.ListProducts: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}
	c.JSON(http.StatusOK, listings)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")
	product, err := h.catalogService.GetProductDetails(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Hdl.GetProduct: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req domain.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidProduct) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Hdl.CreateProduct: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id := c.Param("id")
	var req domain.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	product, err := h.catalogService.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidProduct):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Hdl.UpdateProduct: service error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		}
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	if err := h.catalogService.DeleteProduct(c.Request.Context(), id); err != nil {
		logger.Error("Hdl.DeleteProduct: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

func (h *ProductHandler) AddDiscount(c *gin.Context) {
	id := c.Param("id")
	var discount domain.Discount
	if err := c.ShouldBindJSON(&discount); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	product, err := h.catalogService.AddProductDiscount(c.Request.Context(), id, discount)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidProduct):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Hdl.AddDiscount: service error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add discount"})
		}
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) RemoveDiscount(c *gin.Context) {
	id := c.Param("id")
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount index"})
		return
	}

	product, err := h.catalogService.RemoveProductDiscount(c.Request.Context(), id, index)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Hdl.RemoveDiscount: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove discount"})
		return
	}
	c.JSON(http.StatusOK, product)
}
