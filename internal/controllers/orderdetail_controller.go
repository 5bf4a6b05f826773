package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/matapizza/matapizza-api/internal/services"
	"gorm.io/gorm"
)

// OrderDetailController handles HTTP requests related to order line items
type OrderDetailController interface {
	// GetAllOrderDetails retrieves the flattened line-item view
	GetAllOrderDetails(c *gin.Context)
	// GetOrderDetailByID retrieves a single line item by its ID
	GetOrderDetailByID(c *gin.Context)
}

type orderDetailController struct {
	service services.OrderDetailService
}

// NewOrderDetailController creates a new instance of OrderDetailController
func NewOrderDetailController(service services.OrderDetailService) OrderDetailController {
	return &orderDetailController{service: service}
}

// GetAllOrderDetails godoc
// @Summary Get all order details
// @Description Get every line item with its type name, size, unit price and line total
// @Tags orderdetails
// @Produce json
// @Success 200 {array} models.OrderDetailDTO
// @Failure 500 {object} map[string]string
// @Router /orderdetails [get]
func (c *orderDetailController) GetAllOrderDetails(ctx *gin.Context) {
	details, err := c.service.GetAllOrderDetails()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order details"})
		return
	}
	ctx.JSON(http.StatusOK, details)
}

// GetOrderDetailByID godoc
// @Summary Get order detail by ID
// @Description Get a single line item by its ID
// @Tags orderdetails
// @Produce json
// @Param id path int true "Order detail ID"
// @Success 200 {object} models.OrderDetailDTO
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orderdetails/{id} [get]
func (c *orderDetailController) GetOrderDetailByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order detail ID format"})
		return
	}

	detail, err := c.service.GetOrderDetailByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Order detail with ID " + strconv.Itoa(id) + " not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order detail"})
		return
	}
	ctx.JSON(http.StatusOK, detail)
}
