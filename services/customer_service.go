package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/CardozoMartin/distri-back/models"
	"github.com/CardozoMartin/distri-back/repository"
)

// CustomerService handles customer registry logic.
type CustomerService interface {
	GetAllCustomers(ctx context.Context) ([]models.Customer, *ServiceError)
	GetCustomerByID(ctx context.Context, id string) (*models.Customer, *ServiceError)
	GetCustomerByPhone(ctx context.Context, phone string) (*models.Customer, *ServiceError)
	GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, *ServiceError)
	GetCustomerByDNI(ctx context.Context, dni string) (*models.Customer, *ServiceError)
	CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, *ServiceError)
	UpdateCustomer(ctx context.Context, id string, req *models.UpdateCustomerRequest) (*models.Customer, *ServiceError)
	DeleteCustomer(ctx context.Context, id string) *ServiceError
}

type customerServiceImpl struct {
	repo   repository.CustomerRepository
	logger *zap.Logger
}

func NewCustomerService(repo repository.CustomerRepository, logger *zap.Logger) CustomerService {
	return &customerServiceImpl{repo: repo, logger: logger}
}

func (s *customerServiceImpl) GetAllCustomers(ctx context.Context) ([]models.Customer, *ServiceError) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("customer list failed", zap.Error(err))
		return nil, unexpectedError("No se pudieron obtener los clientes")
	}
	return customers, nil
}

func (s *customerServiceImpl) GetCustomerByID(ctx context.Context, id string) (*models.Customer, *ServiceError) {
	return s.lookup(s.repo.FindByID)(ctx, id)
}

func (s *customerServiceImpl) GetCustomerByPhone(ctx context.Context, phone string) (*models.Customer, *ServiceError) {
	return s.lookup(s.repo.FindByPhone)(ctx, phone)
}

func (s *customerServiceImpl) GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, *ServiceError) {
	return s.lookup(s.repo.FindByEmail)(ctx, email)
}

func (s *customerServiceImpl) GetCustomerByDNI(ctx context.Context, dni string) (*models.Customer, *ServiceError) {
	return s.lookup(s.repo.FindByDNI)(ctx, dni)
}

func (s *customerServiceImpl) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, *ServiceError) {
	// Phone and DNI identify the customer for order lookups; reject
	// duplicates up front.
	if _, err := s.repo.FindByDNI(ctx, req.DNI); err == nil {
		return nil, validationError("Ya existe un cliente con ese DNI")
	}

	customer := &models.Customer{
		Name:    req.Name,
		Surname: req.Surname,
		Email:   req.Email,
		Address: req.Address,
		Phone:   req.Phone,
		DNI:     req.DNI,
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		s.logger.Error("customer insert failed", zap.Error(err))
		return nil, unexpectedError("No se pudo crear el cliente")
	}
	return customer, nil
}

func (s *customerServiceImpl) UpdateCustomer(ctx context.Context, id string, req *models.UpdateCustomerRequest) (*models.Customer, *ServiceError) {
	updates := bson.M{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Surname != nil {
		updates["surname"] = *req.Surname
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.DNI != nil {
		updates["dni"] = *req.DNI
	}

	if len(updates) == 0 {
		return nil, validationError("No hay campos para actualizar")
	}

	customer, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundError("Cliente no encontrado")
		}
		s.logger.Error("customer update failed", zap.String("customer_id", id), zap.Error(err))
		return nil, unexpectedError("No se pudo actualizar el cliente")
	}
	return customer, nil
}

func (s *customerServiceImpl) DeleteCustomer(ctx context.Context, id string) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundError("Cliente no encontrado")
		}
		s.logger.Error("customer delete failed", zap.String("customer_id", id), zap.Error(err))
		return unexpectedError("No se pudo eliminar el cliente")
	}
	return nil
}

func (s *customerServiceImpl) lookup(find func(context.Context, string) (*models.Customer, error)) func(context.Context, string) (*models.Customer, *ServiceError) {
	return func(ctx context.Context, key string) (*models.Customer, *ServiceError) {
		customer, err := find(ctx, key)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, notFoundError("Cliente no encontrado")
			}
			s.logger.Error("customer lookup failed", zap.Error(err))
			return nil, unexpectedError("No se pudo obtener el cliente")
		}
		return customer, nil
	}
}
