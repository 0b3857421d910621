package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/CardozoMartin/distri-back/models"
	"github.com/CardozoMartin/distri-back/repository"
)

// BrandService handles brand registry logic.
type BrandService interface {
	GetAllBrands(ctx context.Context) ([]models.Brand, *ServiceError)
	GetBrandByID(ctx context.Context, id string) (*models.Brand, *ServiceError)
	CreateBrand(ctx context.Context, req *models.CreateBrandRequest) (*models.Brand, *ServiceError)
	UpdateBrand(ctx context.Context, id string, req *models.UpdateBrandRequest) (*models.Brand, *ServiceError)
	DeleteBrand(ctx context.Context, id string) *ServiceError
}

type brandServiceImpl struct {
	repo   repository.BrandRepository
	logger *zap.Logger
}

func NewBrandService(repo repository.BrandRepository, logger *zap.Logger) BrandService {
	return &brandServiceImpl{repo: repo, logger: logger}
}

func (s *brandServiceImpl) GetAllBrands(ctx context.Context) ([]models.Brand, *ServiceError) {
	brands, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("brand list failed", zap.Error(err))
		return nil, unexpectedError("No se pudieron obtener las marcas")
	}
	return brands, nil
}

func (s *brandServiceImpl) GetBrandByID(ctx context.Context, id string) (*models.Brand, *ServiceError) {
	brand, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundError("Marca no encontrada")
		}
		s.logger.Error("brand lookup failed", zap.String("brand_id", id), zap.Error(err))
		return nil, unexpectedError("No se pudo obtener la marca")
	}
	return brand, nil
}

func (s *brandServiceImpl) CreateBrand(ctx context.Context, req *models.CreateBrandRequest) (*models.Brand, *ServiceError) {
	// Brand names are unique in the catalog.
	if _, err := s.repo.FindByName(ctx, req.Name); err == nil {
		return nil, validationError("Ya existe una marca con ese nombre")
	}

	brand := &models.Brand{
		Name:      req.Name,
		LogoImage: req.LogoImage,
	}

	if err := s.repo.Create(ctx, brand); err != nil {
		s.logger.Error("brand insert failed", zap.Error(err))
		return nil, unexpectedError("No se pudo crear la marca")
	}
	return brand, nil
}

func (s *brandServiceImpl) UpdateBrand(ctx context.Context, id string, req *models.UpdateBrandRequest) (*models.Brand, *ServiceError) {
	updates := bson.M{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.LogoImage != nil {
		updates["logoImage"] = *req.LogoImage
	}

	if len(updates) == 0 {
		return nil, validationError("No hay campos para actualizar")
	}

	brand, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundError("Marca no encontrada")
		}
		s.logger.Error("brand update failed", zap.String("brand_id", id), zap.Error(err))
		return nil, unexpectedError("No se pudo actualizar la marca")
	}
	return brand, nil
}

func (s *brandServiceImpl) DeleteBrand(ctx context.Context, id string) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundError("Marca no encontrada")
		}
		s.logger.Error("brand delete failed", zap.String("brand_id", id), zap.Error(err))
		return unexpectedError("No se pudo eliminar la marca")
	}
	return nil
}
