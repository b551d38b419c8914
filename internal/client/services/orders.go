package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MinhAlfred/orchidstore/internal/client/models"
	"github.com/MinhAlfred/orchidstore/internal/client/query"
	"github.com/MinhAlfred/orchidstore/internal/logging"
)

type OrderService struct {
	api   Transport
	cache *query.Cache
	ui    Notifier
	log   logging.Logger
}

func NewOrderService(api Transport, cache *query.Cache, ui Notifier, log logging.Logger) *OrderService {
	return &OrderService{api: api, cache: cache, ui: ui, log: log}
}

// List returns every order (admin view), cached.
func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	orders, err := query.GetOrFetch(ctx, s.cache, query.Key(kindOrders), func(ctx context.Context) ([]models.Order, error) {
		var out []models.Order
		if err := s.api.Get(ctx, "/orders", &out); err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		s.ui.Error(failureMessage(err, "Failed to fetch orders"))
		return nil, err
	}
	return orders, nil
}

// ListMine returns the calling user's own orders, cached under a derived key.
func (s *OrderService) ListMine(ctx context.Context) ([]models.Order, error) {
	orders, err := query.GetOrFetch(ctx, s.cache, query.Key(kindOrders, "user"), func(ctx context.Context) ([]models.Order, error) {
		var out []models.Order
		if err := s.api.Get(ctx, "/orders/user", &out); err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		s.ui.Error(failureMessage(err, "Failed to fetch orders"))
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) Get(ctx context.Context, id int) (*models.Order, error) {
	order, err := query.GetOrFetch(ctx, s.cache, query.Key(kindOrders, strconv.Itoa(id)), func(ctx context.Context) (*models.Order, error) {
		var out models.Order
		if err := s.api.Get(ctx, fmt.Sprintf("/orders/%d", id), &out); err != nil {
			return nil, err
		}
		return &out, nil
	})
	if err != nil {
		s.ui.Error(failureMessage(err, "Failed to fetch order details"))
		return nil, err
	}
	return order, nil
}

// Create places an order. Navigation and cart clearing are the caller's
// responsibility: a checkout clears the cart, an admin-created order does not.
func (s *OrderService) Create(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	var out models.Order
	if err := s.api.Post(ctx, "/orders", req, &out); err != nil {
		s.ui.Error(failureMessage(err, "Failed to create order"))
		return nil, err
	}
	invalidate(s.cache, kindOrders)
	s.ui.Success("Order created successfully!")
	return &out, nil
}

func (s *OrderService) Update(ctx context.Context, id int, req models.OrderRequest) error {
	if err := s.api.Put(ctx, fmt.Sprintf("/orders/%d", id), req, nil); err != nil {
		s.ui.Error(failureMessage(err, "Failed to update order"))
		return err
	}
	invalidate(s.cache, kindOrders)
	s.ui.Success("Order updated successfully!")
	return nil
}

func (s *OrderService) Delete(ctx context.Context, id int) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/orders/%d", id)); err != nil {
		s.ui.Error(failureMessage(err, "Failed to delete order"))
		return err
	}
	invalidate(s.cache, kindOrders)
	s.ui.Success("Order deleted successfully!")
	return nil
}

// MarkSuccess transitions an order to the completed state after payment.
func (s *OrderService) MarkSuccess(ctx context.Context, id int) error {
	if err := s.api.Post(ctx, fmt.Sprintf("/orders/success/%d", id), nil, nil); err != nil {
		s.ui.Error(failureMessage(err, "Failed to update order status"))
		return err
	}
	invalidate(s.cache, kindOrders)
	s.ui.Success("Order marked as completed!")
	return nil
}
