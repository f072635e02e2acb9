package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/storefront-demo/internal/coupon/domain"
	"github.com/ridloal/storefront-demo/internal/coupon/service"
	"github.com/ridloal/storefront-demo/internal/platform/logger"
)

type CouponHandler struct {
	couponService service.CouponService
}

func NewCouponHandler(cs service.CouponService) *CouponHandler {
	return &CouponHandler{couponService: cs}
}

func (h *CouponHandler) RegisterRoutes(router *gin.RouterGroup) {
	couponRoutes := router.Group("/coupons")
	{
		couponRoutes.GET("", h.ListCoupons)
		couponRoutes.POST("", h.CreateCoupon)
		couponRoutes.DELETE("/:code", h.DeleteCoupon)
	}
}

func (h *CouponHandler) ListCoupons(c *gin.Context) {
	coupons, err := h.couponService.ListCoupons(c.Request.Context())
	if err != nil {
		logger.Error("Hdl.ListCoupons: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list coupons"})
		return
	}
	c.JSON(http.StatusOK, coupons)
}

func (h *CouponHandler) CreateCoupon(c *gin.Context) {
	var coupon domain.Coupon
	if err := c.ShouldBindJSON(&coupon); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	res := h.couponService.CreateCoupon(c.Request.Context(), coupon)
	if !res.Success {
		c.JSON(http.StatusConflict, res)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *CouponHandler) DeleteCoupon(c *gin.Context) {
	code := c.Param("code")
	if err := h.couponService.DeleteCoupon(c.Request.Context(), code); err != nil {
		logger.Error("Hdl.DeleteCoupon: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete coupon"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted"})
}
