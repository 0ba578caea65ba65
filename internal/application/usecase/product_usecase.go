package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/campus-store/internal/application/dto"
	"github.com/jhoicas/campus-store/internal/domain"
	"github.com/jhoicas/campus-store/internal/domain/catalog"
	"github.com/jhoicas/campus-store/internal/domain/entity"
	"github.com/jhoicas/campus-store/internal/domain/repository"
	"github.com/jhoicas/campus-store/pkg/logger"
)

// ProductUseCase casos de uso del catálogo: consulta pública y CRUD del panel de administración.
type ProductUseCase struct {
	repo repository.ProductRepository
	log  *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, log *logger.Logger) *ProductUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductUseCase{repo: repo, log: log.Component("catalog")}
}

// Create valida y agrega un producto al catálogo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	input, err := validateProduct(in)
	if err != nil {
		return nil, err
	}
	p, err := uc.repo.Add(ctx, input)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", p.ID).Str("name", p.Name).Msg("producto creado")
	return toProductResponse(p), nil
}

// GetByID obtiene un producto; ErrProductNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Update reemplaza todos los atributos editables del producto.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	input, err := validateProduct(in)
	if err != nil {
		return nil, err
	}
	p, err := uc.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", p.ID).Msg("producto actualizado")
	return toProductResponse(p), nil
}

// Delete elimina un producto. Las órdenes ya creadas conservan su copia de los datos.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("product_id", id).Msg("producto eliminado")
	return nil
}

// List lista el catálogo; category vacío o "All" devuelve todo.
func (uc *ProductUseCase) List(ctx context.Context, category string) (*dto.ProductListResponse, error) {
	category = strings.TrimSpace(category)
	list, err := uc.repo.List(ctx, category)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for i := range list {
		items = append(items, *toProductResponse(&list[i]))
	}
	if category == "" {
		category = catalog.AllCategories
	}
	return &dto.ProductListResponse{Category: category, Items: items}, nil
}

// Categories categorías para el filtro, con "All" primero.
func (uc *ProductUseCase) Categories() dto.CategoryListResponse {
	return dto.CategoryListResponse{Items: append([]string{catalog.AllCategories}, catalog.Categories()...)}
}

func validateProduct(in dto.ProductRequest) (entity.ProductInput, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entity.ProductInput{}, domain.ErrNameRequired
	}
	if in.Price.IsNegative() {
		return entity.ProductInput{}, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrValidation)
	}
	if !catalog.IsCategory(in.Category) {
		return entity.ProductInput{}, fmt.Errorf("%w: categoría desconocida %q", domain.ErrValidation, in.Category)
	}
	return entity.ProductInput{
		Name:        name,
		Price:       in.Price,
		Image:       strings.TrimSpace(in.Image),
		Category:    in.Category,
		Description: strings.TrimSpace(in.Description),
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Image:       p.Image,
		Category:    p.Category,
		Description: p.Description,
	}
}
