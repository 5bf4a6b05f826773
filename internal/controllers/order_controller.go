package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/matapizza/matapizza-api/internal/services"
	"gorm.io/gorm"
)

// OrderController handles HTTP requests related to orders
type OrderController interface {
	// GetAllOrders retrieves all orders with their totals
	GetAllOrders(c *gin.Context)
	// GetPaginatedOrders retrieves a filtered page of orders
	GetPaginatedOrders(c *gin.Context)
	// GetOrderByID retrieves an order with its line items
	GetOrderByID(c *gin.Context)
}

type orderController struct {
	service services.OrderService
}

// NewOrderController creates a new instance of OrderController
func NewOrderController(service services.OrderService) OrderController {
	return &orderController{service: service}
}

// dateQuery reads a yyyy-MM-dd query parameter; unparsable values are
// ignored rather than rejected
func dateQuery(ctx *gin.Context, key string) *time.Time {
	value := ctx.Query(key)
	if value == "" {
		return nil
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &date
}

// floatQuery reads a float query parameter, falling back to zero (which the
// filter treats as unset) on anything unparsable
func floatQuery(ctx *gin.Context, key string) float64 {
	value, err := strconv.ParseFloat(ctx.Query(key), 64)
	if err != nil {
		return 0
	}
	return value
}

// GetAllOrders godoc
// @Summary Get all orders
// @Description Get a list of all orders with their item and price totals
// @Tags orders
// @Produce json
// @Success 200 {array} models.OrderDTO
// @Failure 500 {object} map[string]string
// @Router /orders [get]
func (c *orderController) GetAllOrders(ctx *gin.Context) {
	orders, err := c.service.GetAllOrders()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve orders"})
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

// GetPaginatedOrders godoc
// @Summary Get orders with pagination
// @Description Get a page of orders with optional id search, date range and price range filters. The totals cover the whole filtered set.
// @Tags orders
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param pageSize query int false "Page size, 1-100 (default 10)"
// @Param search query string false "Substring match against the order id"
// @Param startDate query string false "Inclusive start date (yyyy-MM-dd)"
// @Param endDate query string false "Inclusive end date (yyyy-MM-dd)"
// @Param minPrice query number false "Minimum order total, ignored when <= 0"
// @Param maxPrice query number false "Maximum order total, ignored when <= 0"
// @Success 200 {object} models.PaginatedOrdersDTO
// @Failure 500 {object} map[string]string
// @Router /orders/paginated [get]
func (c *orderController) GetPaginatedOrders(ctx *gin.Context) {
	filter := services.OrderFilter{
		Page:      intQuery(ctx, "page", 1),
		PageSize:  intQuery(ctx, "pageSize", 10),
		Search:    ctx.Query("search"),
		StartDate: dateQuery(ctx, "startDate"),
		EndDate:   dateQuery(ctx, "endDate"),
		MinPrice:  floatQuery(ctx, "minPrice"),
		MaxPrice:  floatQuery(ctx, "maxPrice"),
	}

	result, err := c.service.GetPaginatedOrders(filter)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve orders"})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetOrderByID godoc
// @Summary Get order by ID
// @Description Get a single order with its line items and totals
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.OrderDTO
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (c *orderController) GetOrderByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID format"})
		return
	}

	order, err := c.service.GetOrderByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Order with ID " + strconv.Itoa(id) + " not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
		return
	}
	ctx.JSON(http.StatusOK, order)
}
