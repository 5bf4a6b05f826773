package services

import (
	"strings"

	"github.com/matapizza/matapizza-api/internal/models"
	"gorm.io/gorm"
)

// PizzaTypeFilter is the typed filter request for the paginated pizza type
// listing. Search is a case-insensitive substring match over name, category
// and ingredients; Category is an exact, case-insensitive match.
type PizzaTypeFilter struct {
	Page     int
	PageSize int
	Search   string
	Category string
}

// Normalize clamps out-of-range paging values to the defaults
func (f *PizzaTypeFilter) Normalize() {
	if f.Page < 1 {
		f.Page = defaultPage
	}
	if f.PageSize < 1 || f.PageSize > maxPageSize {
		f.PageSize = defaultPageSize
	}
}

// PizzaTypeService provides read access to the pizza type catalog
type PizzaTypeService interface {
	// GetAllPizzaTypes retrieves every pizza type
	GetAllPizzaTypes() ([]models.PizzaTypeDTO, error)
	// GetPaginatedPizzaTypes retrieves one page of the filtered catalog,
	// ordered by name
	GetPaginatedPizzaTypes(filter PizzaTypeFilter) (models.PaginatedPizzaTypesDTO, error)
	// GetPizzaTypeByID retrieves a pizza type with its variants
	GetPizzaTypeByID(id string) (models.PizzaTypeDTO, error)
	// GetCategories retrieves the distinct category names
	GetCategories() ([]string, error)
}

type pizzaTypeService struct {
	db *gorm.DB
}

// NewPizzaTypeService creates a new instance of PizzaTypeService
func NewPizzaTypeService(db *gorm.DB) PizzaTypeService {
	return &pizzaTypeService{db: db}
}

func pizzaTypeDTO(pizzaType models.PizzaType) models.PizzaTypeDTO {
	return models.PizzaTypeDTO{
		PizzaTypeID: pizzaType.PizzaTypeID,
		Name:        pizzaType.Name,
		Category:    pizzaType.Category,
		Ingredients: pizzaType.Ingredients,
	}
}

// filteredQuery builds a fresh pizza type query with the filter predicates
// applied, so the count and page queries never share accumulated state
func (s *pizzaTypeService) filteredQuery(filter PizzaTypeFilter) *gorm.DB {
	query := s.db.Model(&models.PizzaType{})
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(category) LIKE ? OR LOWER(ingredients) LIKE ?",
			pattern, pattern, pattern)
	}
	if filter.Category != "" {
		query = query.Where("LOWER(category) = LOWER(?)", filter.Category)
	}
	return query
}

func (s *pizzaTypeService) GetAllPizzaTypes() ([]models.PizzaTypeDTO, error) {
	var pizzaTypes []models.PizzaType
	if err := s.db.Find(&pizzaTypes).Error; err != nil {
		return nil, err
	}

	dtos := make([]models.PizzaTypeDTO, 0, len(pizzaTypes))
	for _, pizzaType := range pizzaTypes {
		dtos = append(dtos, pizzaTypeDTO(pizzaType))
	}
	return dtos, nil
}

func (s *pizzaTypeService) GetPaginatedPizzaTypes(filter PizzaTypeFilter) (models.PaginatedPizzaTypesDTO, error) {
	filter.Normalize()

	var totalCount int64
	if err := s.filteredQuery(filter).Count(&totalCount).Error; err != nil {
		return models.PaginatedPizzaTypesDTO{}, err
	}

	var pizzaTypes []models.PizzaType
	err := s.filteredQuery(filter).
		Order("name").
		Limit(filter.PageSize).
		Offset((filter.Page - 1) * filter.PageSize).
		Find(&pizzaTypes).Error
	if err != nil {
		return models.PaginatedPizzaTypesDTO{}, err
	}

	dtos := make([]models.PizzaTypeDTO, 0, len(pizzaTypes))
	for _, pizzaType := range pizzaTypes {
		dtos = append(dtos, pizzaTypeDTO(pizzaType))
	}

	return models.PaginatedPizzaTypesDTO{
		TotalCount: totalCount,
		PizzaTypes: dtos,
	}, nil
}

func (s *pizzaTypeService) GetPizzaTypeByID(id string) (models.PizzaTypeDTO, error) {
	var pizzaType models.PizzaType
	err := s.db.Preload("Pizzas").
		Where("pizza_type_id = ?", id).
		First(&pizzaType).Error
	if err != nil {
		return models.PizzaTypeDTO{}, err
	}

	dto := pizzaTypeDTO(pizzaType)
	dto.Pizzas = make([]models.PizzaDTO, 0, len(pizzaType.Pizzas))
	for _, pizza := range pizzaType.Pizzas {
		// nested variants only carry the size and price
		dto.Pizzas = append(dto.Pizzas, models.PizzaDTO{
			Size:  pizza.Size,
			Price: pizza.Price,
		})
	}
	return dto, nil
}

func (s *pizzaTypeService) GetCategories() ([]string, error) {
	var categories []string
	err := s.db.Model(&models.PizzaType{}).
		Distinct().
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
