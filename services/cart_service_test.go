package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/CardozoMartin/distri-back/models"
	"github.com/CardozoMartin/distri-back/repository"
	"github.com/CardozoMartin/distri-back/services"
)

// ---- in-memory drink repo ----

// fakeDrinkRepo keeps drinks in a map and mirrors the store's atomic
// stock semantics: a decrement below zero is rejected, not applied.
type fakeDrinkRepo struct {
	mu     sync.Mutex
	drinks map[string]*models.Drink

	// adjustFail, when set for an id, makes AdjustStock fail with the
	// given error even though FindByID still reports the stored stock.
	adjustFail map[string]error
}

func newFakeDrinkRepo(drinks ...*models.Drink) *fakeDrinkRepo {
	repo := &fakeDrinkRepo{
		drinks:     make(map[string]*models.Drink),
		adjustFail: make(map[string]error),
	}
	for _, d := range drinks {
		repo.drinks[d.ID.Hex()] = d
	}
	return repo
}

func (f *fakeDrinkRepo) FindAll(_ context.Context) ([]models.Drink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Drink, 0, len(f.drinks))
	for _, d := range f.drinks {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDrinkRepo) FindByID(_ context.Context, id string) (*models.Drink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.drinks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *d
	return &copied, nil
}

func (f *fakeDrinkRepo) FindByBrand(_ context.Context, _ string) ([]models.Drink, error) {
	return nil, nil
}

func (f *fakeDrinkRepo) Create(_ context.Context, d *models.Drink) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.drinks[d.ID.Hex()] = d
	return nil
}

func (f *fakeDrinkRepo) Update(_ context.Context, id string, _ bson.M) (*models.Drink, error) {
	return f.FindByID(context.Background(), id)
}

func (f *fakeDrinkRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.drinks[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.drinks, id)
	return nil
}

func (f *fakeDrinkRepo) ToggleActive(_ context.Context, id string) (*models.Drink, error) {
	return f.FindByID(context.Background(), id)
}

func (f *fakeDrinkRepo) AdjustStock(_ context.Context, id string, delta int) (*models.Drink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.adjustFail[id]; ok && delta < 0 {
		return nil, err
	}
	d, ok := f.drinks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if d.Stock+delta < 0 {
		return nil, repository.ErrInsufficientStock
	}
	d.Stock += delta
	copied := *d
	return &copied, nil
}

func (f *fakeDrinkRepo) stock(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.drinks[id].Stock
}

// ---- in-memory cart repo ----

type fakeCartRepo struct {
	mu    sync.Mutex
	carts map[string]*models.Cart

	// updateErr, when set, makes every Update fail with it.
	updateErr error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string]*models.Cart)}
}

func (f *fakeCartRepo) Create(_ context.Context, cart *models.Cart) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if cart.ID.IsZero() {
		cart.ID = primitive.NewObjectID()
	}
	stored := *cart
	f.carts[cart.ID.Hex()] = &stored
	return nil
}

func (f *fakeCartRepo) FindByID(_ context.Context, id string) (*models.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cart, ok := f.carts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *cart
	return &copied, nil
}

func (f *fakeCartRepo) FindAll(_ context.Context) ([]models.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Cart, 0, len(f.carts))
	for _, cart := range f.carts {
		out = append(out, *cart)
	}
	return out, nil
}

func (f *fakeCartRepo) FindByCustomerID(_ context.Context, customerID string) ([]models.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Cart
	for _, cart := range f.carts {
		if r := cart.Recipient(); r != nil && r.ID == customerID {
			out = append(out, *cart)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) Update(_ context.Context, id string, updates bson.M) (*models.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	cart, ok := f.carts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for key, val := range updates {
		switch key {
		case "productos":
			cart.Lines = val.([]models.CartLine)
		case "total":
			cart.Total = val.(float64)
		case "status":
			cart.Status = val.(models.Status)
		case "paymentMethod":
			cart.PaymentMethod = val.(string)
		case "delivered":
			cart.Delivered = val.(bool)
		case "statusOrder":
			cart.ApprovalStatus = val.(models.ApprovalStatus)
		}
	}
	copied := *cart
	return &copied, nil
}

func (f *fakeCartRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.carts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.carts, id)
	return nil
}

func (f *fakeCartRepo) FindPaidBetween(_ context.Context, from, to time.Time) ([]models.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Cart
	for _, cart := range f.carts {
		if cart.Status != models.StatusPaid {
			continue
		}
		if !cart.Date.Before(from) && cart.Date.Before(to) {
			out = append(out, *cart)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.carts)
}

// ---- spy notifier ----

type spyNotifier struct {
	mu     sync.Mutex
	events []string
}

func (s *spyNotifier) record(event string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *spyNotifier) recorded() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.events...)
}

func (s *spyNotifier) OrderCreated(context.Context, *models.Cart) { s.record("created") }
func (s *spyNotifier) StatusChanged(_ context.Context, _ string, _, to models.Status, _ *models.Cart) {
	s.record("status:" + string(to))
}
func (s *spyNotifier) Delivered(context.Context, string, *models.Cart) { s.record("delivered") }
func (s *spyNotifier) PaymentProcessed(_ context.Context, _, method string, _ *models.Cart) {
	s.record("payment:" + method)
}
func (s *spyNotifier) OrderAccepted(context.Context, *models.CartCustomer, *models.Cart) {
	s.record("accepted")
}
func (s *spyNotifier) OrderCancelled(context.Context, *models.CartCustomer, *models.Cart) {
	s.record("cancelled")
}

// ---- recording cache invalidator ----

type fakeInvalidator struct {
	mu  sync.Mutex
	ids []string
}

func (f *fakeInvalidator) Invalidate(_ context.Context, id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ids = append(f.ids, id)
}

func (f *fakeInvalidator) invalidated() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.ids...)
}

// ---- helpers ----

func newDrink(name string, price float64, stock int) *models.Drink {
	return &models.Drink{
		ID:       primitive.NewObjectID(),
		Name:     name,
		Price:    price,
		Stock:    stock,
		IsActive: true,
	}
}

func testCustomer() []models.CartCustomer {
	return []models.CartCustomer{{
		ID:    "cust-1",
		Name:  "Juan",
		Email: "juan@example.com",
		Phone: "3815551234",
	}}
}

func newCartService(carts *fakeCartRepo, drinks *fakeDrinkRepo, spy *spyNotifier) services.CartService {
	logger := zap.NewNop()
	return services.NewCartService(carts, drinks, nil, spy, logger)
}

// ---- tests ----

func TestCreateCart_SnapshotsCatalogPrices(t *testing.T) {
	coke := newDrink("Coca Cola 2L", 1500, 10)
	beer := newDrink("Quilmes 1L", 1200, 6)
	drinks := newFakeDrinkRepo(coke, beer)
	carts := newFakeCartRepo()
	spy := &spyNotifier{}
	svc := newCartService(carts, drinks, spy)

	cart, serr := svc.CreateCart(context.Background(), &models.CreateCartRequest{
		Lines: []models.CartLineRequest{
			{DrinkID: coke.ID.Hex(), Quantity: 2},
			{DrinkID: beer.ID.Hex(), Quantity: 3},
		},
		Customer: testCustomer(),
	})

	require.Nil(t, serr)
	require.NotNil(t, cart)
	assert.Equal(t, 2*1500.0+3*1200.0, cart.Total)
	assert.Equal(t, "Coca Cola 2L", cart.Lines[0].Name)
	assert.Equal(t, 1500.0, cart.Lines[0].Price)
	assert.Equal(t, models.StatusPending, cart.Status)
	assert.Equal(t, models.ApprovalPending, cart.ApprovalStatus)
	assert.False(t, cart.Delivered)

	assert.Equal(t, 8, drinks.stock(coke.ID.Hex()))
	assert.Equal(t, 3, drinks.stock(beer.ID.Hex()))
	assert.Equal(t, []string{"created"}, spy.recorded())
}

func TestCreateCart_UnknownDrink(t *testing.T) {
	coke := newDrink("Coca Cola 2L", 1500, 10)
	drinks := newFakeDrinkRepo(coke)
	carts := newFakeCartRepo()
	svc := newCartService(carts, drinks, &spyNotifier{})

	_, serr := svc.CreateCart(context.Background(), &models.CreateCartRequest{
		Lines:    []models.CartLineRequest{{DrinkID: primitive.NewObjectID().Hex(), Quantity: 1}},
		Customer: testCustomer(),
	})

	require.NotNil(t, serr)
	assert.Equal(t, services.CodeNotFound, serr.Code)
	assert.Equal(t, 0, carts.count())
	assert.Equal(t, 10, drinks.stock(coke.ID.Hex()))
}

func TestCreateCart_InactiveDrink(t *testing.T) {
	coke := newDrink("Coca Cola 2L", 1500, 10)
	coke.IsActive = false
	drinks := newFakeDrinkRepo(coke)
	carts := newFakeCartRepo()
	svc := newCartService(carts, drinks, &spyNotifier{})

	_, serr := svc.CreateCart(context.Background(), &models.CreateCartRequest{
		Lines:    []models.CartLineRequest{{DrinkID: coke.ID.Hex(), Quantity: 1}},
		Customer: testCustomer(),
	})

	require.NotNil(t, serr)
	assert.Equal(t, services.CodeUnavailable, serr.Code)
	assert.Equal(t, 10, drinks.stock(coke.ID.Hex()))
}

func TestCreateCart_InsufficientStockListsShortages(t *testing.T) {
	coke := newDrink("Coca Cola 2L", 1500, 10)
	beer := newDrink("Quilmes 1L", 1200, 1)
	drinks := newFakeDrinkRepo(coke, beer)
	carts := newFakeCartRepo()
	svc := newCartService(carts, drinks, &spyNotifier{})

	_, serr := svc.CreateCart(context.Background(), &models.CreateCartRequest{
		Lines: []models.CartLineRequest{
			{DrinkID: coke.ID.Hex(), Quantity: 2},
			{DrinkID: beer.ID.Hex(), Quantity: 5},
		},
		Customer: testCustomer(),
	})

	require.NotNil(t, serr)
	assert.Equal(t, services.CodeInsufficientStock, serr.Code)

	items, ok := serr.Details.([]services.InsufficientStockItem)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, beer.ID.Hex(), items[0].DrinkID)
	assert.Equal(t, 5, items[0].Requested)
	assert.Equal(t, 1, items[0].Available)

	// Nothing was reserved and no order record survives.
	assert.Equal(t, 10, drinks.stock(coke.ID.Hex()))
	assert.Equal(t, 1, drinks.stock(beer.ID.Hex()))
	assert.Equal(t, 0, carts.count())
}

func TestCreateCart_ReservationIsAllOrNothing(t *testing.T) {
	// The advisory check passes for both lines, but the decrement on the
	// second line fails as if a concurrent order took the stock first.
	coke := newDrink("Coca Cola 2L", 1500, 10)
	beer := newDrink("Quilmes 1L", 1200, 5)
	drinks := newFakeDrinkRepo(coke, beer)
	drinks.adjustFail[beer.ID.Hex()] = repository.ErrInsufficientStock
	carts := newFakeCartRepo()
	svc := newCartService(carts, drinks, &spyNotifier{})

	_, serr := svc.CreateCart(context.Background(), &models.CreateCartRequest{
		Lines: []models.CartLineRequest{
			{DrinkID: coke.ID.Hex(), Quantity: 2},
			{DrinkID: beer.ID.Hex(), Quantity: 5},
		},
		Customer: testCustomer(),
	})

	require.NotNil(t, serr)
	assert.Equal(t, services.CodeInsufficientStock, serr.Code)

	// The first line's decrement was compensated back.
	assert.Equal(t, 10, drinks.stock(coke.ID.Hex()))
	assert.Equal(t, 5, drinks.stock(beer.ID.Hex()))
	assert.Equal(t, 0, carts.count())
}

func TestCartService_StockWritesInvalidateCatalogCache(t *testing.T) {
	coke := newDrink("Coca Cola 2L", 1500, 10)
	beer := newDrink("Quilmes 1L", 1200, 6)
	drinks := newFakeDrinkRepo(coke, beer)
	carts := newFakeCartRepo()
	cache := &fakeInvalidator{}
	svc := services.NewCartService(carts, drinks, cache, &spyNotifier{}, zap.NewNop())

	cart, serr := svc.CreateCart(context.Background(), &models.CreateCartRequest{
		Lines: []models.CartLineRequest{
			{DrinkID: coke.ID.Hex(), Quantity: 2},
			{DrinkID: beer.ID.Hex(), Quantity: 1},
		},
		Customer: testCustomer(),
	})
	require.Nil(t, serr)

	// Reserving dropped both drinks from the cache.
	assert.Equal(t, []string{coke.ID.Hex(), beer.ID.Hex()}, cache.invalidated())

	_, serr = svc.CancelCart(context.Background(), cart.ID.Hex())
	require.Nil(t, serr)

	// Releasing on cancel dropped them again.
	assert.Equal(t,
		[]string{coke.ID.Hex(), beer.ID.Hex(), coke.ID.Hex(), beer.ID.Hex()},
		cache.invalidated())
}

func TestUpdateCart_ReplacesLinesAndReconcilesStock(t *testing.T) {
	coke := newDrink("Coca Cola 2L", 1500, 10)
	beer := newDrink("Quilmes 1L", 1200, 6)
	drinks := newFakeDrinkRepo(coke, beer)
	carts := newFakeCartRepo()
	spy := &spyNotifier{}
	svc := newCartService(carts, drinks, spy)

	cart, serr := svc.CreateCart(context.Background(), &models.CreateCartRequest{
		Lines:    []models.CartLineRequest{{DrinkID: coke.ID.Hex(), Quantity: 4}},
		Customer: testCustomer(),
	})
	require.Nil(t, serr)
	require.Equal(t, 6, drinks.stock(coke.ID.Hex()))

	updated, serr := svc.UpdateCart(context.Background(), cart.ID.Hex(), &models.UpdateCartRequest{
		Lines: []models.CartLineRequest{{DrinkID: beer.ID.Hex(), Quantity: 2}},
	})

	require.Nil(t, serr)
	assert.Equal(t, 2*1200.0, updated.Total)
	assert.Equal(t, 10, drinks.stock(coke.ID.Hex()))
	assert.Equal(t, 4, drinks.stock(beer.ID.Hex()))
}

func TestUpdateCart_FailedReplacementRestoresOldReservation(t *testing.T) {
	coke := newDrink("Coca Cola 2L", 1500, 10)
	beer := newDrink("Quilmes 1L", 1200, 1)
	drinks := newFakeDrinkRepo(coke, beer)
	carts := newFakeCartRepo()
	svc := newCartService(carts, drinks, &spyNotifier{})

	cart, serr := svc.CreateCart(context.Background(), &models.CreateCartRequest{
		Lines:    []models.CartLineRequest{{DrinkID: coke.ID.Hex(), Quantity: 4}},
		Customer: testCustomer(),
	})
	require.Nil(t, serr)

	_, serr = svc.UpdateCart(context.Background(), cart.ID.Hex(), &models.UpdateCartRequest{
		Lines: []models.CartLineRequest{{DrinkID: beer.ID.Hex(), Quantity: 5}},
	})

	require.NotNil(t, serr)
	assert.Equal(t, services.CodeInsufficientStock, serr.Code)

	// The old reservation is back in place and the cart is unchanged.
	assert.Equal(t, 6, drinks.stock(coke.ID.Hex()))
	assert.Equal(t, 1, drinks.stock(beer.ID.Hex()))
	stored, err := carts.FindByID(context.Background(), cart.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 4*1500.0, stored.Total)
}

func TestUpdateCart_LinesWithInvalidStatusLeavesReservationIntact(t *testing.T) {
	coke := newDrink("Coca Cola 2L", 1500, 10)
	beer := newDrink("Quilmes 1L", 1200, 10)
	drinks := newFakeDrinkRepo(coke, beer)
	carts := newFakeCartRepo()
	svc := newCartService(carts, drinks, &spyNotifier{})

	cart, serr := svc.CreateCart(context.Background(), &models.CreateCartRequest{
		Lines:    []models.CartLineRequest{{DrinkID: coke.ID.Hex(), Quantity: 4}},
		Customer: testCustomer(),
	})
	require.Nil(t, serr)
	require.Equal(t, 6, drinks.stock(coke.ID.Hex()))

	// New lines bundled with a bad status: the request must fail before
	// any stock moves.
	bogus := models.Status("no-such-status")
	_, serr = svc.UpdateCart(context.Background(), cart.ID.Hex(), &models.UpdateCartRequest{
		Lines:  []models.CartLineRequest{{DrinkID: beer.ID.Hex(), Quantity: 3}},
		Status: &bogus,
	})

	require.NotNil(t, serr)
	assert.Equal(t, services.CodeValidation, serr.Code)

	// The old reservation is still held and nothing was reserved for the
	// rejected lines.
	assert.Equal(t, 6, drinks.stock(coke.ID.Hex()))
	assert.Equal(t, 10, drinks.stock(beer.ID.Hex()))
	stored, err := carts.FindByID(context.Background(), cart.ID.Hex())
	require.NoError(t, err)
	require.Len(t, stored.Lines, 1)
	assert.Equal(t, coke.ID.Hex(), stored.Lines[0].DrinkID)
}

func TestUpdateCart_FailedPersistRestoresOldReservation(t *testing.T) {
	coke := newDrink("Coca Cola 2L", 1500, 10)
	beer := newDrink("Quilmes 1L", 1200, 10)
	drinks := newFakeDrinkRepo(coke, beer)
	carts := newFakeCartRepo()
	svc := newCartService(carts, drinks, &spyNotifier{})

	cart, serr := svc.CreateCart(context.Background(), &models.CreateCartRequest{
		Lines:    []models.CartLineRequest{{DrinkID: coke.ID.Hex(), Quantity: 4}},
		Customer: testCustomer(),
	})
	require.Nil(t, serr)
	require.Equal(t, 6, drinks.stock(coke.ID.Hex()))

	// The swap itself succeeds but persisting the cart does not; the new
	// reservation must be released and the old one taken back.
	carts.updateErr = errors.New("write conflict")
	_, serr = svc.UpdateCart(context.Background(), cart.ID.Hex(), &models.UpdateCartRequest{
		Lines: []models.CartLineRequest{{DrinkID: beer.ID.Hex(), Quantity: 3}},
	})

	require.NotNil(t, serr)
	assert.Equal(t, services.CodeUnexpected, serr.Code)
	assert.Equal(t, 6, drinks.stock(coke.ID.Hex()))
	assert.Equal(t, 10, drinks.stock(beer.ID.Hex()))
}

func TestUpdateCart_StatusChangeNotifies(t *testing.T) {
	coke := newDrink("Coca Cola 2L", 1500, 10)
	drinks := newFakeDrinkRepo(coke)
	carts := newFakeCartRepo()
	spy := &spyNotifier{}
	svc := newCartService(carts, drinks, spy)

	cart, serr := svc.CreateCart(context.Background(), &models.CreateCartRequest{
		Lines:    []models.CartLineRequest{{DrinkID: coke.ID.Hex(), Quantity: 1}},
		Customer: testCustomer(),
	})
	require.Nil(t, serr)

	status := models.StatusPreparing
	updated, serr := svc.UpdateCart(context.Background(), cart.ID.Hex(), &models.UpdateCartRequest{Status: &status})

	require.Nil(t, serr)
	assert.Equal(t, models.StatusPreparing, updated.Status)
	assert.Equal(t, []string{"created", "status:" + string(models.StatusPreparing)}, spy.recorded())
}

func TestUpdateCart_RejectsUnknownStatus(t *testing.T) {
	coke := newDrink("Coca Cola 2L", 1500, 10)
	drinks := newFakeDrinkRepo(coke)
	carts := newFakeCartRepo()
	svc := newCartService(carts, drinks, &spyNotifier{})

	cart, serr := svc.CreateCart(context.Background(), &models.CreateCartRequest{
		Lines:    []models.CartLineRequest{{DrinkID: coke.ID.Hex(), Quantity: 1}},
		Customer: testCustomer(),
	})
	require.Nil(t, serr)

	bogus := models.Status("enviado")
	_, serr = svc.UpdateCart(context.Background(), cart.ID.Hex(), &models.UpdateCartRequest{Status: &bogus})

	require.NotNil(t, serr)
	assert.Equal(t, services.CodeValidation, serr.Code)
}

func TestUpdateCart_NoFields(t *testing.T) {
	coke := newDrink("Coca Cola 2L", 1500, 10)
	drinks := newFakeDrinkRepo(coke)
	carts := newFakeCartRepo()
	svc := newCartService(carts, drinks, &spyNotifier{})

	cart, serr := svc.CreateCart(context.Background(), &models.CreateCartRequest{
		Lines:    []models.CartLineRequest{{DrinkID: coke.ID.Hex(), Quantity: 1}},
		Customer: testCustomer(),
	})
	require.Nil(t, serr)

	_, serr = svc.UpdateCart(context.Background(), cart.ID.Hex(), &models.UpdateCartRequest{})

	require.NotNil(t, serr)
	assert.Equal(t, services.CodeValidation, serr.Code)
}

func TestProcessPayment_MarksPaid(t *testing.T) {
	coke := newDrink("Coca Cola 2L", 1500, 10)
	drinks := newFakeDrinkRepo(coke)
	carts := newFakeCartRepo()
	spy := &spyNotifier{}
	svc := newCartService(carts, drinks, spy)

	cart, serr := svc.CreateCart(context.Background(), &models.CreateCartRequest{
		Lines:    []models.CartLineRequest{{DrinkID: coke.ID.Hex(), Quantity: 2}},
		Customer: testCustomer(),
	})
	require.Nil(t, serr)

	paid, serr := svc.ProcessPayment(context.Background(), cart.ID.Hex(), "efectivo")

	require.Nil(t, serr)
	assert.Equal(t, models.StatusPaid, paid.Status)
	assert.Equal(t, "efectivo", paid.PaymentMethod)
	assert.Contains(t, spy.recorded(), "payment:efectivo")
}

func TestProcessPayment_CartNotFound(t *testing.T) {
	drinks := newFakeDrinkRepo()
	carts := newFakeCartRepo()
	svc := newCartService(carts, drinks, &spyNotifier{})

	_, serr := svc.ProcessPayment(context.Background(), primitive.NewObjectID().Hex(), "efectivo")

	require.NotNil(t, serr)
	assert.Equal(t, services.CodeNotFound, serr.Code)
}

func TestMarkDelivered_FromPaid(t *testing.T) {
	coke := newDrink("Coca Cola 2L", 1500, 10)
	drinks := newFakeDrinkRepo(coke)
	carts := newFakeCartRepo()
	spy := &spyNotifier{}
	svc := newCartService(carts, drinks, spy)

	cart, serr := svc.CreateCart(context.Background(), &models.CreateCartRequest{
		Lines:    []models.CartLineRequest{{DrinkID: coke.ID.Hex(), Quantity: 1}},
		Customer: testCustomer(),
	})
	require.Nil(t, serr)
	_, serr = svc.ProcessPayment(context.Background(), cart.ID.Hex(), "transferencia")
	require.Nil(t, serr)

	delivered, serr := svc.MarkDelivered(context.Background(), cart.ID.Hex())

	require.Nil(t, serr)
	assert.True(t, delivered.Delivered)
	assert.Equal(t, models.StatusDelivered, delivered.Status)
	assert.Contains(t, spy.recorded(), "delivered")
}

func TestMarkDelivered_RejectsPendingCart(t *testing.T) {
	coke := newDrink("Coca Cola 2L", 1500, 10)
	drinks := newFakeDrinkRepo(coke)
	carts := newFakeCartRepo()
	svc := newCartService(carts, drinks, &spyNotifier{})

	cart, serr := svc.CreateCart(context.Background(), &models.CreateCartRequest{
		Lines:    []models.CartLineRequest{{DrinkID: coke.ID.Hex(), Quantity: 1}},
		Customer: testCustomer(),
	})
	require.Nil(t, serr)

	_, serr = svc.MarkDelivered(context.Background(), cart.ID.Hex())

	require.NotNil(t, serr)
	assert.Equal(t, services.CodeInvalidTransition, serr.Code)
}

func TestCancelCart_RestoresStockOnce(t *testing.T) {
	coke := newDrink("Coca Cola 2L", 1500, 10)
	drinks := newFakeDrinkRepo(coke)
	carts := newFakeCartRepo()
	spy := &spyNotifier{}
	svc := newCartService(carts, drinks, spy)

	cart, serr := svc.CreateCart(context.Background(), &models.CreateCartRequest{
		Lines:    []models.CartLineRequest{{DrinkID: coke.ID.Hex(), Quantity: 3}},
		Customer: testCustomer(),
	})
	require.Nil(t, serr)
	require.Equal(t, 7, drinks.stock(coke.ID.Hex()))

	cancelled, serr := svc.CancelCart(context.Background(), cart.ID.Hex())
	require.Nil(t, serr)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
	assert.Equal(t, 10, drinks.stock(coke.ID.Hex()))

	// A second cancel must not restore stock again.
	_, serr = svc.CancelCart(context.Background(), cart.ID.Hex())
	require.NotNil(t, serr)
	assert.Equal(t, services.CodeInvalidTransition, serr.Code)
	assert.Equal(t, 10, drinks.stock(coke.ID.Hex()))
}

func TestDeleteCart_RestoresStock(t *testing.T) {
	coke := newDrink("Coca Cola 2L", 1500, 10)
	drinks := newFakeDrinkRepo(coke)
	carts := newFakeCartRepo()
	svc := newCartService(carts, drinks, &spyNotifier{})

	cart, serr := svc.CreateCart(context.Background(), &models.CreateCartRequest{
		Lines:    []models.CartLineRequest{{DrinkID: coke.ID.Hex(), Quantity: 4}},
		Customer: testCustomer(),
	})
	require.Nil(t, serr)
	require.Equal(t, 6, drinks.stock(coke.ID.Hex()))

	serr = svc.DeleteCart(context.Background(), cart.ID.Hex())

	require.Nil(t, serr)
	assert.Equal(t, 10, drinks.stock(coke.ID.Hex()))
	assert.Equal(t, 0, carts.count())
}

func TestDeleteCart_CancelledCartSkipsRestore(t *testing.T) {
	coke := newDrink("Coca Cola 2L", 1500, 10)
	drinks := newFakeDrinkRepo(coke)
	carts := newFakeCartRepo()
	svc := newCartService(carts, drinks, &spyNotifier{})

	cart, serr := svc.CreateCart(context.Background(), &models.CreateCartRequest{
		Lines:    []models.CartLineRequest{{DrinkID: coke.ID.Hex(), Quantity: 4}},
		Customer: testCustomer(),
	})
	require.Nil(t, serr)

	_, serr = svc.CancelCart(context.Background(), cart.ID.Hex())
	require.Nil(t, serr)
	require.Equal(t, 10, drinks.stock(coke.ID.Hex()))

	serr = svc.DeleteCart(context.Background(), cart.ID.Hex())

	require.Nil(t, serr)
	assert.Equal(t, 10, drinks.stock(coke.ID.Hex()))
	assert.Equal(t, 0, carts.count())
}

func TestSetApproval_AcceptNotifiesCustomer(t *testing.T) {
	coke := newDrink("Coca Cola 2L", 1500, 10)
	drinks := newFakeDrinkRepo(coke)
	carts := newFakeCartRepo()
	spy := &spyNotifier{}
	svc := newCartService(carts, drinks, spy)

	cart, serr := svc.CreateCart(context.Background(), &models.CreateCartRequest{
		Lines:    []models.CartLineRequest{{DrinkID: coke.ID.Hex(), Quantity: 1}},
		Customer: testCustomer(),
	})
	require.Nil(t, serr)

	decided, serr := svc.SetApproval(context.Background(), cart.ID.Hex(), models.ApprovalAccepted)

	require.Nil(t, serr)
	assert.Equal(t, models.ApprovalAccepted, decided.ApprovalStatus)
	assert.Contains(t, spy.recorded(), "accepted")
}

func TestSetApproval_DecisionIsTerminal(t *testing.T) {
	coke := newDrink("Coca Cola 2L", 1500, 10)
	drinks := newFakeDrinkRepo(coke)
	carts := newFakeCartRepo()
	spy := &spyNotifier{}
	svc := newCartService(carts, drinks, spy)

	cart, serr := svc.CreateCart(context.Background(), &models.CreateCartRequest{
		Lines:    []models.CartLineRequest{{DrinkID: coke.ID.Hex(), Quantity: 1}},
		Customer: testCustomer(),
	})
	require.Nil(t, serr)

	_, serr = svc.SetApproval(context.Background(), cart.ID.Hex(), models.ApprovalAccepted)
	require.Nil(t, serr)

	before := len(spy.recorded())
	_, serr = svc.SetApproval(context.Background(), cart.ID.Hex(), models.ApprovalCancelled)

	require.NotNil(t, serr)
	assert.Equal(t, services.CodeInvalidTransition, serr.Code)
	assert.Len(t, spy.recorded(), before)
}

func TestSetApproval_RejectsUnknownDecision(t *testing.T) {
	drinks := newFakeDrinkRepo()
	carts := newFakeCartRepo()
	svc := newCartService(carts, drinks, &spyNotifier{})

	_, serr := svc.SetApproval(context.Background(), primitive.NewObjectID().Hex(), models.ApprovalStatus("maybe"))

	require.NotNil(t, serr)
	assert.Equal(t, services.CodeValidation, serr.Code)
}
