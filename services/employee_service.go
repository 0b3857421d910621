package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/CardozoMartin/distri-back/models"
	"github.com/CardozoMartin/distri-back/repository"
)

// EmployeeService handles staff registry logic.
type EmployeeService interface {
	GetAllEmployees(ctx context.Context) ([]models.Employee, *ServiceError)
	GetEmployeeByID(ctx context.Context, id string) (*models.Employee, *ServiceError)
	CreateEmployee(ctx context.Context, req *models.CreateEmployeeRequest) (*models.Employee, *ServiceError)
	UpdateEmployee(ctx context.Context, id string, req *models.UpdateEmployeeRequest) (*models.Employee, *ServiceError)
	DeleteEmployee(ctx context.Context, id string) *ServiceError
}

type employeeServiceImpl struct {
	repo   repository.EmployeeRepository
	logger *zap.Logger
}

func NewEmployeeService(repo repository.EmployeeRepository, logger *zap.Logger) EmployeeService {
	return &employeeServiceImpl{repo: repo, logger: logger}
}

func (s *employeeServiceImpl) GetAllEmployees(ctx context.Context) ([]models.Employee, *ServiceError) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("employee list failed", zap.Error(err))
		return nil, unexpectedError("No se pudieron obtener los empleados")
	}
	return employees, nil
}

func (s *employeeServiceImpl) GetEmployeeByID(ctx context.Context, id string) (*models.Employee, *ServiceError) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundError("Empleado no encontrado")
		}
		s.logger.Error("employee lookup failed", zap.String("employee_id", id), zap.Error(err))
		return nil, unexpectedError("No se pudo obtener el empleado")
	}
	return employee, nil
}

func (s *employeeServiceImpl) CreateEmployee(ctx context.Context, req *models.CreateEmployeeRequest) (*models.Employee, *ServiceError) {
	employee := &models.Employee{
		Name:    req.Name,
		Age:     req.Age,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		City:    req.City,
	}

	if err := s.repo.Create(ctx, employee); err != nil {
		s.logger.Error("employee insert failed", zap.Error(err))
		return nil, unexpectedError("No se pudo crear el empleado")
	}
	return employee, nil
}

func (s *employeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req *models.UpdateEmployeeRequest) (*models.Employee, *ServiceError) {
	updates := bson.M{}
	if req.Name != nil {
		updates["nombre"] = *req.Name
	}
	if req.Age != nil {
		updates["edad"] = *req.Age
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Address != nil {
		updates["direccion"] = *req.Address
	}
	if req.City != nil {
		updates["ciudad"] = *req.City
	}

	if len(updates) == 0 {
		return nil, validationError("No hay campos para actualizar")
	}

	employee, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundError("Empleado no encontrado")
		}
		s.logger.Error("employee update failed", zap.String("employee_id", id), zap.Error(err))
		return nil, unexpectedError("No se pudo actualizar el empleado")
	}
	return employee, nil
}

func (s *employeeServiceImpl) DeleteEmployee(ctx context.Context, id string) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundError("Empleado no encontrado")
		}
		s.logger.Error("employee delete failed", zap.String("employee_id", id), zap.Error(err))
		return unexpectedError("No se pudo eliminar el empleado")
	}
	return nil
}
