package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/matapizza/matapizza-api/internal/services"
	"gorm.io/gorm"
)

// PizzaController handles HTTP requests related to pizza variants
type PizzaController interface {
	// GetAllPizzas retrieves all pizza variants
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza variant by its ID
	GetPizzaByID(c *gin.Context)
}

type pizzaController struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) PizzaController {
	return &pizzaController{service: service}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get a list of all pizza variants
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.PizzaDTO
// @Failure 500 {object} map[string]string
// @Router /pizzas [get]
func (c *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.GetAllPizzas()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve pizzas"})
		return
	}
	ctx.JSON(http.StatusOK, pizzas)
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza variant by its ID
// @Tags pizzas
// @Produce json
// @Param id path string true "Pizza ID"
// @Success 200 {object} models.PizzaDTO
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pizzas/{id} [get]
func (c *pizzaController) GetPizzaByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if strings.TrimSpace(id) == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Pizza ID cannot be empty"})
		return
	}

	pizza, err := c.service.GetPizzaByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Pizza with ID '" + id + "' not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve pizza"})
		return
	}
	ctx.JSON(http.StatusOK, pizza)
}
