package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/storefront-demo/internal/cart/domain"
	"github.com/ridloal/storefront-demo/internal/cart/service"
	couponDomain "github.com/ridloal/storefront-demo/internal/coupon/domain"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cs service.CartService) *CartHandler {
	return &CartHandler{cartService: cs}
}

func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup) {
	cartRoutes := router.Group("/cart")
	{
		cartRoutes.GET("", h.GetCart)
		cartRoutes.DELETE("", h.ClearCart)

		cartRoutes.POST("/items", h.AddItem)
		cartRoutes.PUT("/items/:product_id", h.UpdateQuantity)
		cartRoutes.DELETE("/items/:product_id", h.RemoveItem)

		cartRoutes.POST("/coupon", h.ApplyCoupon)
		cartRoutes.DELETE("/coupon", h.ClearCoupon)
	}
}

// CartView adalah snapshot cart untuk UI: isi cart plus total yang dihitung
// ulang di setiap request.
type CartView struct {
	Items          []domain.CartItem    `json:"items"`
	Total          domain.CartTotal     `json:"total"`
	TotalItemCount int                  `json:"total_item_count"`
	SelectedCoupon *couponDomain.Coupon `json:"selected_coupon,omitempty"`
}

type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type UpdateQuantityRequest struct {
	// Pointer supaya quantity 0 (= hapus) tetap lolos binding
	Quantity *int `json:"quantity" binding:"required"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

func (h *CartHandler) currentView() CartView {
	return CartView{
		Items:          h.cartService.Items(),
		Total:          h.cartService.Totals(),
		TotalItemCount: h.cartService.TotalItemCount(),
		SelectedCoupon: h.cartService.SelectedCoupon(),
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.currentView())
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cartService.ClearCart(c.Request.Context())
	c.JSON(http.StatusOK, h.currentView())
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	res := h.cartService.AddToCart(c.Request.Context(), req.ProductID)
	if !res.Success {
		c.JSON(http.StatusConflict, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	productID := c.Param("product_id")
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	res := h.cartService.UpdateQuantity(c.Request.Context(), productID, *req.Quantity)
	if !res.Success {
		c.JSON(http.StatusConflict, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID := c.Param("product_id")
	h.cartService.RemoveFromCart(c.Request.Context(), productID)
	c.JSON(http.StatusOK, h.currentView())
}

func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	res := h.cartService.ApplyCoupon(c.Request.Context(), req.Code)
	if !res.Success {
		c.JSON(http.StatusConflict, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *CartHandler) ClearCoupon(c *gin.Context) {
	h.cartService.ClearCoupon()
	c.JSON(http.StatusOK, h.currentView())
}
