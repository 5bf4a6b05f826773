package services

import (
	"github.com/matapizza/matapizza-api/internal/models"
	"gorm.io/gorm"
)

// PizzaService provides read access to the pizza variants
type PizzaService interface {
	// GetAllPizzas retrieves every pizza variant
	GetAllPizzas() ([]models.PizzaDTO, error)
	// GetPizzaByID retrieves a pizza variant by its ID
	GetPizzaByID(id string) (models.PizzaDTO, error)
}

type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func pizzaDTO(pizza models.Pizza) models.PizzaDTO {
	return models.PizzaDTO{
		PizzaID:     pizza.PizzaID,
		PizzaTypeID: pizza.PizzaTypeID,
		Size:        pizza.Size,
		Price:       pizza.Price,
	}
}

func (s *pizzaService) GetAllPizzas() ([]models.PizzaDTO, error) {
	var pizzas []models.Pizza
	if err := s.db.Find(&pizzas).Error; err != nil {
		return nil, err
	}

	dtos := make([]models.PizzaDTO, 0, len(pizzas))
	for _, pizza := range pizzas {
		dtos = append(dtos, pizzaDTO(pizza))
	}
	return dtos, nil
}

func (s *pizzaService) GetPizzaByID(id string) (models.PizzaDTO, error) {
	var pizza models.Pizza
	err := s.db.Where("pizza_id = ?", id).First(&pizza).Error
	if err != nil {
		return models.PizzaDTO{}, err
	}
	return pizzaDTO(pizza), nil
}
