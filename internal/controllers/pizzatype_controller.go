package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/matapizza/matapizza-api/internal/services"
	"gorm.io/gorm"
)

// PizzaTypeController handles HTTP requests related to pizza types
type PizzaTypeController interface {
	// GetAllPizzaTypes retrieves all pizza types
	GetAllPizzaTypes(c *gin.Context)
	// GetPaginatedPizzaTypes retrieves a filtered page of pizza types
	GetPaginatedPizzaTypes(c *gin.Context)
	// GetPizzaTypeByID retrieves a pizza type by its ID
	GetPizzaTypeByID(c *gin.Context)
	// GetCategories retrieves the distinct category names
	GetCategories(c *gin.Context)
}

type pizzaTypeController struct {
	service services.PizzaTypeService
}

// NewPizzaTypeController creates a new instance of PizzaTypeController
func NewPizzaTypeController(service services.PizzaTypeService) PizzaTypeController {
	return &pizzaTypeController{service: service}
}

// intQuery reads an integer query parameter, falling back to defaultValue on
// anything unparsable. Malformed filter input is normalized, never rejected.
func intQuery(ctx *gin.Context, key string, defaultValue int) int {
	value, err := strconv.Atoi(ctx.Query(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// GetAllPizzaTypes godoc
// @Summary Get all pizza types
// @Description Get a list of all pizza types
// @Tags pizzatypes
// @Produce json
// @Success 200 {array} models.PizzaTypeDTO
// @Failure 500 {object} map[string]string
// @Router /pizzatypes [get]
func (c *pizzaTypeController) GetAllPizzaTypes(ctx *gin.Context) {
	pizzaTypes, err := c.service.GetAllPizzaTypes()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve pizza types"})
		return
	}
	ctx.JSON(http.StatusOK, pizzaTypes)
}

// GetPaginatedPizzaTypes godoc
// @Summary Get pizza types with pagination
// @Description Get a page of pizza types with optional search and category filters
// @Tags pizzatypes
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param pageSize query int false "Page size, 1-100 (default 10)"
// @Param search query string false "Case-insensitive substring over name, category and ingredients"
// @Param category query string false "Exact category (case-insensitive)"
// @Success 200 {object} models.PaginatedPizzaTypesDTO
// @Failure 500 {object} map[string]string
// @Router /pizzatypes/paginated [get]
func (c *pizzaTypeController) GetPaginatedPizzaTypes(ctx *gin.Context) {
	filter := services.PizzaTypeFilter{
		Page:     intQuery(ctx, "page", 1),
		PageSize: intQuery(ctx, "pageSize", 10),
		Search:   ctx.Query("search"),
		Category: ctx.Query("category"),
	}

	result, err := c.service.GetPaginatedPizzaTypes(filter)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve pizza types"})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetPizzaTypeByID godoc
// @Summary Get pizza type by ID
// @Description Get a single pizza type with its pizza variants
// @Tags pizzatypes
// @Produce json
// @Param id path string true "Pizza type ID"
// @Success 200 {object} models.PizzaTypeDTO
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pizzatypes/{id} [get]
func (c *pizzaTypeController) GetPizzaTypeByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if strings.TrimSpace(id) == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Pizza type ID cannot be empty"})
		return
	}

	pizzaType, err := c.service.GetPizzaTypeByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Pizza type with ID '" + id + "' not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve pizza type"})
		return
	}
	ctx.JSON(http.StatusOK, pizzaType)
}

// GetCategories godoc
// @Summary Get pizza type categories
// @Description Get the distinct category names, used for frontend filtering
// @Tags pizzatypes
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} map[string]string
// @Router /pizzatypes/category [get]
func (c *pizzaTypeController) GetCategories(ctx *gin.Context) {
	categories, err := c.service.GetCategories()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve categories"})
		return
	}
	ctx.JSON(http.StatusOK, categories)
}
