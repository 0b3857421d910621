package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/CardozoMartin/distri-back/models"
	"github.com/CardozoMartin/distri-back/repository"
	"github.com/CardozoMartin/distri-back/services"
)

type fakeCustomerRepo struct {
	mu        sync.Mutex
	customers map[string]*models.Customer
}

func newFakeCustomerRepo(customers ...*models.Customer) *fakeCustomerRepo {
	repo := &fakeCustomerRepo{customers: make(map[string]*models.Customer)}
	for _, c := range customers {
		repo.customers[c.ID.Hex()] = c
	}
	return repo
}

func (f *fakeCustomerRepo) FindAll(context.Context) ([]models.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCustomerRepo) FindByID(_ context.Context, id string) (*models.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.customers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCustomerRepo) findWhere(match func(*models.Customer) bool) (*models.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.customers {
		if match(c) {
			copied := *c
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCustomerRepo) FindByPhone(_ context.Context, phone string) (*models.Customer, error) {
	return f.findWhere(func(c *models.Customer) bool { return c.Phone == phone })
}

func (f *fakeCustomerRepo) FindByEmail(_ context.Context, email string) (*models.Customer, error) {
	return f.findWhere(func(c *models.Customer) bool { return c.Email == email })
}

func (f *fakeCustomerRepo) FindByDNI(_ context.Context, dni string) (*models.Customer, error) {
	return f.findWhere(func(c *models.Customer) bool { return c.DNI == dni })
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *models.Customer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	stored := *c
	f.customers[c.ID.Hex()] = &stored
	return nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, id string, _ bson.M) (*models.Customer, error) {
	return f.FindByID(context.Background(), id)
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.customers[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.customers, id)
	return nil
}

func newCustomerService(repo *fakeCustomerRepo) services.CustomerService {
	return services.NewCustomerService(repo, zap.NewNop())
}

func sampleCustomer() *models.Customer {
	return &models.Customer{
		ID:      primitive.NewObjectID(),
		Name:    "Juan",
		Surname: "Pérez",
		Email:   "juan@example.com",
		Address: "San Martín 123",
		Phone:   "3815551234",
		DNI:     "30123456",
	}
}

func TestCreateCustomer_Success(t *testing.T) {
	svc := newCustomerService(newFakeCustomerRepo())

	customer, serr := svc.CreateCustomer(context.Background(), &models.CreateCustomerRequest{
		Name:    "Juan",
		Surname: "Pérez",
		Email:   "juan@example.com",
		Address: "San Martín 123",
		Phone:   "3815551234",
		DNI:     "30123456",
	})

	require.Nil(t, serr)
	assert.False(t, customer.ID.IsZero())
	assert.Equal(t, "30123456", customer.DNI)
}

func TestCreateCustomer_RejectsDuplicateDNI(t *testing.T) {
	existing := sampleCustomer()
	svc := newCustomerService(newFakeCustomerRepo(existing))

	_, serr := svc.CreateCustomer(context.Background(), &models.CreateCustomerRequest{
		Name:    "Otro",
		Surname: "Cliente",
		Email:   "otro@example.com",
		Address: "Belgrano 456",
		Phone:   "3815550000",
		DNI:     existing.DNI,
	})

	require.NotNil(t, serr)
	assert.Equal(t, services.CodeValidation, serr.Code)
}

func TestGetCustomerByPhone(t *testing.T) {
	existing := sampleCustomer()
	svc := newCustomerService(newFakeCustomerRepo(existing))

	customer, serr := svc.GetCustomerByPhone(context.Background(), existing.Phone)

	require.Nil(t, serr)
	assert.Equal(t, existing.DNI, customer.DNI)
}

func TestGetCustomerByDNI_NotFound(t *testing.T) {
	svc := newCustomerService(newFakeCustomerRepo())

	_, serr := svc.GetCustomerByDNI(context.Background(), "99999999")

	require.NotNil(t, serr)
	assert.Equal(t, services.CodeNotFound, serr.Code)
}

func TestUpdateCustomer_NoFields(t *testing.T) {
	existing := sampleCustomer()
	svc := newCustomerService(newFakeCustomerRepo(existing))

	_, serr := svc.UpdateCustomer(context.Background(), existing.ID.Hex(), &models.UpdateCustomerRequest{})

	require.NotNil(t, serr)
	assert.Equal(t, services.CodeValidation, serr.Code)
}
