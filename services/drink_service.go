package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/CardozoMartin/distri-back/models"
	"github.com/CardozoMartin/distri-back/repository"
)

// DrinkService handles catalog business logic.
type DrinkService interface {
	GetAllDrinks(ctx context.Context) ([]models.Drink, *ServiceError)
	GetDrinkByID(ctx context.Context, id string) (*models.Drink, *ServiceError)
	GetDrinksByBrand(ctx context.Context, brand string) ([]models.Drink, *ServiceError)
	CreateDrink(ctx context.Context, req *models.CreateDrinkRequest) (*models.Drink, *ServiceError)
	UpdateDrink(ctx context.Context, id string, req *models.UpdateDrinkRequest) (*models.Drink, *ServiceError)
	DeleteDrink(ctx context.Context, id string) *ServiceError
	ToggleDrinkState(ctx context.Context, id string) (*models.Drink, *ServiceError)
}

type drinkServiceImpl struct {
	repo   repository.DrinkRepository
	cache  *DrinkCache
	logger *zap.Logger
}

// NewDrinkService wires the catalog service. cache may be nil when Redis
// is not configured.
func NewDrinkService(repo repository.DrinkRepository, cache *DrinkCache, logger *zap.Logger) DrinkService {
	return &drinkServiceImpl{repo: repo, cache: cache, logger: logger}
}

func (s *drinkServiceImpl) GetAllDrinks(ctx context.Context) ([]models.Drink, *ServiceError) {
	if drinks, ok := s.cache.GetList(ctx); ok {
		return drinks, nil
	}

	drinks, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("drink list failed", zap.Error(err))
		return nil, unexpectedError("No se pudieron obtener las bebidas")
	}

	s.cache.SetListAsync(drinks)
	return drinks, nil
}

func (s *drinkServiceImpl) GetDrinkByID(ctx context.Context, id string) (*models.Drink, *ServiceError) {
	if drink, ok := s.cache.GetDrink(ctx, id); ok {
		return drink, nil
	}

	drink, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundError("Bebida no encontrada")
		}
		s.logger.Error("drink lookup failed", zap.String("drink_id", id), zap.Error(err))
		return nil, unexpectedError("No se pudo obtener la bebida")
	}

	s.cache.SetDrinkAsync(id, drink)
	return drink, nil
}

func (s *drinkServiceImpl) GetDrinksByBrand(ctx context.Context, brand string) ([]models.Drink, *ServiceError) {
	drinks, err := s.repo.FindByBrand(ctx, brand)
	if err != nil {
		s.logger.Error("drink lookup by brand failed", zap.String("brand", brand), zap.Error(err))
		return nil, unexpectedError("No se pudieron obtener las bebidas")
	}
	return drinks, nil
}

func (s *drinkServiceImpl) CreateDrink(ctx context.Context, req *models.CreateDrinkRequest) (*models.Drink, *ServiceError) {
	if !models.ValidCategory(req.Category) {
		return nil, validationError(fmt.Sprintf("Tipo de bebida no válido: %s", req.Category))
	}

	drink := &models.Drink{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Brand:       req.Brand,
		Image:       req.Image,
		Flavor:      req.Flavor,
		Category:    req.Category,
		IsActive:    true,
	}

	if err := s.repo.Create(ctx, drink); err != nil {
		s.logger.Error("drink insert failed", zap.Error(err))
		return nil, unexpectedError("No se pudo crear la bebida")
	}

	s.cache.Invalidate(ctx, drink.ID.Hex())
	return drink, nil
}

func (s *drinkServiceImpl) UpdateDrink(ctx context.Context, id string, req *models.UpdateDrinkRequest) (*models.Drink, *ServiceError) {
	updates := bson.M{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.Brand != nil {
		updates["marca"] = *req.Brand
	}
	if req.Image != nil {
		updates["imagen"] = *req.Image
	}
	if req.Flavor != nil {
		updates["sabor"] = *req.Flavor
	}
	if req.Category != nil {
		if !models.ValidCategory(*req.Category) {
			return nil, validationError(fmt.Sprintf("Tipo de bebida no válido: %s", *req.Category))
		}
		updates["tipo"] = *req.Category
	}

	if len(updates) == 0 {
		return nil, validationError("No hay campos para actualizar")
	}

	drink, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundError("Bebida no encontrada")
		}
		s.logger.Error("drink update failed", zap.String("drink_id", id), zap.Error(err))
		return nil, unexpectedError("No se pudo actualizar la bebida")
	}

	s.cache.Invalidate(ctx, id)
	return drink, nil
}

func (s *drinkServiceImpl) DeleteDrink(ctx context.Context, id string) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundError("Bebida no encontrada")
		}
		s.logger.Error("drink delete failed", zap.String("drink_id", id), zap.Error(err))
		return unexpectedError("No se pudo eliminar la bebida")
	}

	s.cache.Invalidate(ctx, id)
	return nil
}

func (s *drinkServiceImpl) ToggleDrinkState(ctx context.Context, id string) (*models.Drink, *ServiceError) {
	drink, err := s.repo.ToggleActive(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundError("Bebida no encontrada")
		}
		s.logger.Error("drink state toggle failed", zap.String("drink_id", id), zap.Error(err))
		return nil, unexpectedError("No se pudo cambiar el estado de la bebida")
	}

	s.cache.Invalidate(ctx, id)
	return drink, nil
}
