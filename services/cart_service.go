package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/CardozoMartin/distri-back/models"
	"github.com/CardozoMartin/distri-back/notifier"
	"github.com/CardozoMartin/distri-back/repository"
)

// CartService is the order engine: it owns validation against the
// catalog, price snapshotting, stock reservation with compensation, and
// the order status transitions.
type CartService interface {
	CreateCart(ctx context.Context, req *models.CreateCartRequest) (*models.Cart, *ServiceError)
	GetCartByID(ctx context.Context, id string) (*models.Cart, *ServiceError)
	GetAllCarts(ctx context.Context) ([]models.Cart, *ServiceError)
	GetCartsByCustomerID(ctx context.Context, customerID string) ([]models.Cart, *ServiceError)
	UpdateCart(ctx context.Context, id string, req *models.UpdateCartRequest) (*models.Cart, *ServiceError)
	ProcessPayment(ctx context.Context, id, paymentMethod string) (*models.Cart, *ServiceError)
	MarkDelivered(ctx context.Context, id string) (*models.Cart, *ServiceError)
	DeleteCart(ctx context.Context, id string) *ServiceError
	CancelCart(ctx context.Context, id string) (*models.Cart, *ServiceError)
	SetApproval(ctx context.Context, id string, decision models.ApprovalStatus) (*models.Cart, *ServiceError)

	SalesForDay(ctx context.Context) ([]models.Cart, *ServiceError)
	DailySales(ctx context.Context) (*models.SalesSummary, *ServiceError)
	SalesComparison(ctx context.Context) (*models.SalesComparison, *ServiceError)
	MonthlySales(ctx context.Context) (*models.SalesSummary, *ServiceError)
	MonthlySalesComparison(ctx context.Context) (*models.SalesComparison, *ServiceError)
}

// CatalogInvalidator drops cached catalog entries after a stock write so
// catalog reads never serve a stale stock figure for the cache TTL.
// *DrinkCache satisfies it.
type CatalogInvalidator interface {
	Invalidate(ctx context.Context, id string)
}

type cartServiceImpl struct {
	carts    repository.CartRepository
	drinks   repository.DrinkRepository
	cache    CatalogInvalidator
	notifier notifier.Notifier
	logger   *zap.Logger
	now      func() time.Time
}

// NewCartService wires the order engine. The notifier is required; pass
// notifier.Nop{} when no channel is configured. The cache may be nil when
// catalog caching is disabled.
func NewCartService(carts repository.CartRepository, drinks repository.DrinkRepository, cache CatalogInvalidator, n notifier.Notifier, logger *zap.Logger) CartService {
	return &cartServiceImpl{
		carts:    carts,
		drinks:   drinks,
		cache:    cache,
		notifier: n,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateCart validates the requested lines against the catalog, snapshots
// prices, persists the order and reserves stock. Persist and reserve are
// one logical operation: a failed reservation rolls the new record back.
func (s *cartServiceImpl) CreateCart(ctx context.Context, req *models.CreateCartRequest) (*models.Cart, *ServiceError) {
	lines, total, serr := s.validateAndPrice(ctx, req.Lines)
	if serr != nil {
		return nil, serr
	}

	if serr := s.checkAvailability(ctx, lines); serr != nil {
		return nil, serr
	}

	cart := &models.Cart{
		Lines:          lines,
		Total:          total,
		Customer:       req.Customer,
		Status:         models.StatusPending,
		Date:           s.now().UTC(),
		Delivered:      false,
		ApprovalStatus: models.ApprovalPending,
	}

	if err := s.carts.Create(ctx, cart); err != nil {
		s.logger.Error("cart insert failed", zap.Error(err))
		return nil, unexpectedError("No se pudo crear el carrito")
	}

	if serr := s.reserveStock(ctx, lines); serr != nil {
		if err := s.carts.Delete(ctx, cart.ID.Hex()); err != nil {
			s.logger.Error("rollback of unreserved cart failed",
				zap.String("cart_id", cart.ID.Hex()), zap.Error(err))
		}
		return nil, serr
	}

	s.notifier.OrderCreated(ctx, cart)
	return cart, nil
}

func (s *cartServiceImpl) GetCartByID(ctx context.Context, id string) (*models.Cart, *ServiceError) {
	cart, err := s.carts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundError("Carrito no encontrado")
		}
		s.logger.Error("cart lookup failed", zap.String("cart_id", id), zap.Error(err))
		return nil, unexpectedError("No se pudo obtener el carrito")
	}
	return cart, nil
}

func (s *cartServiceImpl) GetAllCarts(ctx context.Context) ([]models.Cart, *ServiceError) {
	carts, err := s.carts.FindAll(ctx)
	if err != nil {
		s.logger.Error("cart list failed", zap.Error(err))
		return nil, unexpectedError("No se pudieron obtener los carritos")
	}
	return carts, nil
}

func (s *cartServiceImpl) GetCartsByCustomerID(ctx context.Context, customerID string) ([]models.Cart, *ServiceError) {
	carts, err := s.carts.FindByCustomerID(ctx, customerID)
	if err != nil {
		s.logger.Error("cart lookup by customer failed",
			zap.String("customer_id", customerID), zap.Error(err))
		return nil, unexpectedError("No se pudieron obtener los carritos")
	}
	return carts, nil
}

// UpdateCart replaces the cart's lines and/or its fulfillment status.
// Replacing lines releases the old reservation, validates and reserves
// the new lines, and compensates back to the old reservation when the
// new one cannot be taken in full.
func (s *cartServiceImpl) UpdateCart(ctx context.Context, id string, req *models.UpdateCartRequest) (*models.Cart, *ServiceError) {
	// Reject bad input before any stock moves so a failed request never
	// leaves a half-applied reservation behind.
	if req.Status != nil && !req.Status.Valid() {
		return nil, validationError(fmt.Sprintf("Estado no válido: %s", *req.Status))
	}
	if len(req.Lines) == 0 && req.Status == nil {
		return nil, validationError("No hay campos para actualizar")
	}

	current, serr := s.GetCartByID(ctx, id)
	if serr != nil {
		return nil, serr
	}

	updates := bson.M{}
	var newLines []models.CartLine

	if len(req.Lines) > 0 {
		if err := s.releaseStock(ctx, current.Lines); err != nil {
			s.logger.Error("release of previous lines failed",
				zap.String("cart_id", id), zap.Error(err))
			return nil, unexpectedError("No se pudo actualizar el carrito")
		}

		lines, total, serr := s.validateAndPrice(ctx, req.Lines)
		if serr == nil {
			serr = s.checkAvailability(ctx, lines)
		}
		if serr == nil {
			serr = s.reserveStock(ctx, lines)
		}
		if serr != nil {
			// The cart still holds its old lines; take their
			// reservation back so stock stays reconciled.
			if rerr := s.reserveStock(ctx, current.Lines); rerr != nil {
				s.logger.Error("restore of previous reservation failed",
					zap.String("cart_id", id), zap.String("reason", rerr.Message))
			}
			return nil, serr
		}

		newLines = lines
		updates["productos"] = lines
		updates["total"] = total
	}

	if req.Status != nil {
		updates["status"] = *req.Status
	}

	updated, err := s.carts.Update(ctx, id, updates)
	if err != nil {
		if newLines != nil {
			// The stored cart kept its old lines; undo the swap so the
			// reservation matches what is persisted.
			if rerr := s.releaseStock(ctx, newLines); rerr != nil {
				s.logger.Error("release of unpersisted lines failed",
					zap.String("cart_id", id), zap.Error(rerr))
			}
			if rserr := s.reserveStock(ctx, current.Lines); rserr != nil {
				s.logger.Error("restore of previous reservation failed",
					zap.String("cart_id", id), zap.String("reason", rserr.Message))
			}
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundError("Carrito no encontrado")
		}
		s.logger.Error("cart update failed", zap.String("cart_id", id), zap.Error(err))
		return nil, unexpectedError("No se pudo actualizar el carrito")
	}

	if req.Status != nil && *req.Status != current.Status {
		s.notifier.StatusChanged(ctx, id, current.Status, *req.Status, updated)
	}

	return updated, nil
}

// ProcessPayment re-checks availability for the cart's lines before
// marking it paid, defending against stock edits made since creation.
func (s *cartServiceImpl) ProcessPayment(ctx context.Context, id, paymentMethod string) (*models.Cart, *ServiceError) {
	cart, serr := s.GetCartByID(ctx, id)
	if serr != nil {
		return nil, serr
	}

	if serr := s.checkAvailability(ctx, cart.Lines); serr != nil {
		return nil, serr
	}

	updated, err := s.carts.Update(ctx, id, bson.M{
		"paymentMethod": paymentMethod,
		"status":        models.StatusPaid,
	})
	if err != nil {
		s.logger.Error("payment update failed", zap.String("cart_id", id), zap.Error(err))
		return nil, unexpectedError("No se pudo procesar el pago")
	}

	s.notifier.PaymentProcessed(ctx, id, paymentMethod, updated)
	return updated, nil
}

// MarkDelivered flags the cart as delivered. Only carts that are paying,
// paid or being prepared can be delivered.
func (s *cartServiceImpl) MarkDelivered(ctx context.Context, id string) (*models.Cart, *ServiceError) {
	cart, serr := s.GetCartByID(ctx, id)
	if serr != nil {
		return nil, serr
	}

	if !cart.Status.DeliveryEligible() {
		return nil, invalidTransitionError(
			fmt.Sprintf("No se puede marcar como entregado un carrito con estado: %s", cart.Status))
	}

	updated, err := s.carts.Update(ctx, id, bson.M{
		"delivered": true,
		"status":    models.StatusDelivered,
	})
	if err != nil {
		s.logger.Error("delivery update failed", zap.String("cart_id", id), zap.Error(err))
		return nil, unexpectedError("No se pudo actualizar la entrega")
	}

	s.notifier.Delivered(ctx, id, updated)
	return updated, nil
}

// DeleteCart restores the cart's reserved stock and removes the record.
// A cancelled cart already returned its stock, so only the delete runs.
func (s *cartServiceImpl) DeleteCart(ctx context.Context, id string) *ServiceError {
	cart, serr := s.GetCartByID(ctx, id)
	if serr != nil {
		return serr
	}

	if cart.Status != models.StatusCancelled {
		if err := s.releaseStock(ctx, cart.Lines); err != nil {
			s.logger.Error("stock release on delete failed",
				zap.String("cart_id", id), zap.Error(err))
			return unexpectedError("No se pudo eliminar el carrito")
		}
	}

	if err := s.carts.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundError("Carrito no encontrado")
		}
		s.logger.Error("cart delete failed", zap.String("cart_id", id), zap.Error(err))
		return unexpectedError("No se pudo eliminar el carrito")
	}
	return nil
}

// CancelCart restores the cart's reserved stock and marks it cancelled.
// Cancelling twice is rejected so stock is never restored twice.
func (s *cartServiceImpl) CancelCart(ctx context.Context, id string) (*models.Cart, *ServiceError) {
	cart, serr := s.GetCartByID(ctx, id)
	if serr != nil {
		return nil, serr
	}

	if cart.Status == models.StatusCancelled {
		return nil, invalidTransitionError("El carrito ya está cancelado")
	}

	if err := s.releaseStock(ctx, cart.Lines); err != nil {
		s.logger.Error("stock release on cancel failed",
			zap.String("cart_id", id), zap.Error(err))
		return nil, unexpectedError("No se pudo cancelar el carrito")
	}

	updated, err := s.carts.Update(ctx, id, bson.M{"status": models.StatusCancelled})
	if err != nil {
		s.logger.Error("cancel update failed", zap.String("cart_id", id), zap.Error(err))
		return nil, unexpectedError("No se pudo cancelar el carrito")
	}

	s.notifier.StatusChanged(ctx, id, cart.Status, models.StatusCancelled, updated)
	return updated, nil
}

// SetApproval records the admin accept/cancel decision. The decision is
// terminal: once an order leaves pending the operation is rejected and no
// notification is re-sent.
func (s *cartServiceImpl) SetApproval(ctx context.Context, id string, decision models.ApprovalStatus) (*models.Cart, *ServiceError) {
	if decision != models.ApprovalAccepted && decision != models.ApprovalCancelled {
		return nil, validationError(fmt.Sprintf("Estado no válido: %s", decision))
	}

	cart, serr := s.GetCartByID(ctx, id)
	if serr != nil {
		return nil, serr
	}

	if cart.ApprovalStatus.Decided() {
		return nil, invalidTransitionError(
			fmt.Sprintf("El pedido ya fue decidido: %s", cart.ApprovalStatus))
	}

	updated, err := s.carts.Update(ctx, id, bson.M{"statusOrder": decision})
	if err != nil {
		s.logger.Error("approval update failed", zap.String("cart_id", id), zap.Error(err))
		return nil, unexpectedError("No se pudo actualizar el pedido")
	}

	if decision == models.ApprovalAccepted {
		s.notifier.OrderAccepted(ctx, cart.Recipient(), updated)
	} else {
		s.notifier.OrderCancelled(ctx, cart.Recipient(), updated)
	}

	return updated, nil
}

// validateAndPrice builds validated lines from the requested ones: the
// drink must exist and be active, and price/name are read fresh from the
// catalog, never from the caller. Pure read; no side effects.
func (s *cartServiceImpl) validateAndPrice(ctx context.Context, reqLines []models.CartLineRequest) ([]models.CartLine, float64, *ServiceError) {
	lines := make([]models.CartLine, 0, len(reqLines))
	var total float64

	for _, req := range reqLines {
		drink, err := s.drinks.FindByID(ctx, req.DrinkID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, 0, notFoundError(fmt.Sprintf("La bebida con ID %s no existe", req.DrinkID))
			}
			s.logger.Error("drink lookup failed", zap.String("drink_id", req.DrinkID), zap.Error(err))
			return nil, 0, unexpectedError("No se pudo validar el carrito")
		}

		if !drink.IsActive {
			return nil, 0, unavailableError(fmt.Sprintf("La bebida %s no está disponible", drink.Name))
		}

		line := models.CartLine{
			DrinkID:  req.DrinkID,
			Quantity: req.Quantity,
			Price:    drink.Price,
			Name:     drink.Name,
		}
		lines = append(lines, line)
		total += line.Subtotal()
	}

	return lines, total, nil
}

// checkAvailability is the advisory stock check: it reads current stock
// per line and fails with the full list of shortages. The authoritative
// check happens again inside reserveStock at decrement time.
func (s *cartServiceImpl) checkAvailability(ctx context.Context, lines []models.CartLine) *ServiceError {
	var short []InsufficientStockItem

	for _, line := range lines {
		drink, err := s.drinks.FindByID(ctx, line.DrinkID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return notFoundError(fmt.Sprintf("La bebida con ID %s no existe", line.DrinkID))
			}
			s.logger.Error("stock check failed", zap.String("drink_id", line.DrinkID), zap.Error(err))
			return unexpectedError("No se pudo verificar el stock")
		}
		if drink.Stock < line.Quantity {
			short = append(short, InsufficientStockItem{
				DrinkID:   line.DrinkID,
				Name:      drink.Name,
				Requested: line.Quantity,
				Available: drink.Stock,
			})
		}
	}

	if len(short) > 0 {
		return insufficientStockError(short)
	}
	return nil
}

// reserveStock decrements stock line by line. Each decrement re-checks
// stock server-side; when a later line fails, the already-reserved lines
// are released again so the whole reservation is all-or-nothing.
func (s *cartServiceImpl) reserveStock(ctx context.Context, lines []models.CartLine) *ServiceError {
	for i, line := range lines {
		_, err := s.drinks.AdjustStock(ctx, line.DrinkID, -line.Quantity)
		if err == nil {
			s.invalidateCatalog(ctx, line.DrinkID)
			continue
		}

		if rerr := s.releaseStock(ctx, lines[:i]); rerr != nil {
			s.logger.Error("rollback of partial reservation failed", zap.Error(rerr))
		}

		if errors.Is(err, repository.ErrInsufficientStock) {
			item := InsufficientStockItem{DrinkID: line.DrinkID, Requested: line.Quantity}
			if drink, ferr := s.drinks.FindByID(ctx, line.DrinkID); ferr == nil {
				item.Name = drink.Name
				item.Available = drink.Stock
			}
			return insufficientStockError([]InsufficientStockItem{item})
		}
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundError(fmt.Sprintf("La bebida con ID %s no existe", line.DrinkID))
		}
		s.logger.Error("stock reserve failed", zap.String("drink_id", line.DrinkID), zap.Error(err))
		return unexpectedError("No se pudo reservar el stock")
	}
	return nil
}

// releaseStock increments stock for every line. Remaining lines are still
// released when one fails; the first failure is reported.
func (s *cartServiceImpl) releaseStock(ctx context.Context, lines []models.CartLine) error {
	var firstErr error
	for _, line := range lines {
		if _, err := s.drinks.AdjustStock(ctx, line.DrinkID, line.Quantity); err != nil {
			s.logger.Error("stock release failed",
				zap.String("drink_id", line.DrinkID),
				zap.Int("quantity", line.Quantity),
				zap.Error(err))
			if firstErr == nil {
				firstErr = fmt.Errorf("release stock for drink %s: %w", line.DrinkID, err)
			}
			continue
		}
		s.invalidateCatalog(ctx, line.DrinkID)
	}
	return firstErr
}

func (s *cartServiceImpl) invalidateCatalog(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	s.cache.Invalidate(ctx, id)
}
