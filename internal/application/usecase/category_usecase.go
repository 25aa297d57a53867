package usecase

import (
	"github.com/Dumstain/GPSBackendFarmacia/internal/application/dto"
	"github.com/Dumstain/GPSBackendFarmacia/internal/domain"
	"github.com/Dumstain/GPSBackendFarmacia/internal/domain/entity"
	"github.com/Dumstain/GPSBackendFarmacia/internal/domain/repository"
)

// CategoryUseCase CRUD de categorías. Eliminar una categoría no toca sus productos.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría y devuelve su id.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (int64, error) {
	if in.Name == "" {
		return 0, domain.ErrInvalidInput
	}
	return uc.repo.Create(&entity.Category{Name: in.Name})
}

// GetByID devuelve una categoría; (nil, nil) si no existe.
func (uc *CategoryUseCase) GetByID(id int64) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return &dto.CategoryResponse{ID: category.ID, Name: category.Name}, nil
}

// List devuelve todas las categorías.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	categories, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// Update renombra una categoría.
func (uc *CategoryUseCase) Update(id int64, in dto.CreateCategoryRequest) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	if in.Name == "" {
		return domain.ErrInvalidInput
	}
	category.Name = in.Name
	return uc.repo.Update(category)
}

// Delete elimina una categoría por id.
func (uc *CategoryUseCase) Delete(id int64) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
