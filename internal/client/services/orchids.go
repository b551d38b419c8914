package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MinhAlfred/orchidstore/internal/client/models"
	"github.com/MinhAlfred/orchidstore/internal/client/nav"
	"github.com/MinhAlfred/orchidstore/internal/client/query"
	"github.com/MinhAlfred/orchidstore/internal/logging"
)

type OrchidService struct {
	api   Transport
	cache *query.Cache
	ui    Notifier
	log   logging.Logger
}

func NewOrchidService(api Transport, cache *query.Cache, ui Notifier, log logging.Logger) *OrchidService {
	return &OrchidService{api: api, cache: cache, ui: ui, log: log}
}

// List returns every orchid (admin view), cached.
func (s *OrchidService) List(ctx context.Context) ([]models.Orchid, error) {
	orchids, err := query.GetOrFetch(ctx, s.cache, query.Key(kindOrchids), func(ctx context.Context) ([]models.Orchid, error) {
		var out []models.Orchid
		if err := s.api.Get(ctx, "/orchids", &out); err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		s.ui.Error(failureMessage(err, "Failed to fetch orchids"))
		return nil, err
	}
	return orchids, nil
}

// ListAvailable returns the purchasable subset, cached under a derived key.
func (s *OrchidService) ListAvailable(ctx context.Context) ([]models.Orchid, error) {
	orchids, err := query.GetOrFetch(ctx, s.cache, query.Key(kindOrchids, "available"), func(ctx context.Context) ([]models.Orchid, error) {
		var out []models.Orchid
		if err := s.api.Get(ctx, "/orchids/available", &out); err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		s.ui.Error(failureMessage(err, "Failed to fetch available orchids"))
		return nil, err
	}
	return orchids, nil
}

// Get returns one orchid by id, cached.
func (s *OrchidService) Get(ctx context.Context, id int) (*models.Orchid, error) {
	orchid, err := query.GetOrFetch(ctx, s.cache, query.Key(kindOrchids, strconv.Itoa(id)), func(ctx context.Context) (*models.Orchid, error) {
		var out models.Orchid
		if err := s.api.Get(ctx, fmt.Sprintf("/orchids/%d", id), &out); err != nil {
			return nil, err
		}
		return &out, nil
	})
	if err != nil {
		s.ui.Error(failureMessage(err, "Failed to fetch orchid details"))
		return nil, err
	}
	return orchid, nil
}

func (s *OrchidService) Create(ctx context.Context, req models.OrchidRequest) error {
	if err := s.api.Post(ctx, "/orchids", req, nil); err != nil {
		s.ui.Error(failureMessage(err, "Failed to create orchid"))
		return err
	}
	invalidate(s.cache, kindOrchids)
	s.ui.Success("Orchid created successfully!")
	nav.NavigateTo(nav.RouteOrchidList)
	return nil
}

func (s *OrchidService) Update(ctx context.Context, id int, req models.OrchidRequest) error {
	if err := s.api.Put(ctx, fmt.Sprintf("/orchids/%d", id), req, nil); err != nil {
		s.ui.Error(failureMessage(err, "Failed to update orchid"))
		return err
	}
	invalidate(s.cache, kindOrchids)
	s.ui.Success("Orchid updated successfully!")
	nav.NavigateTo(nav.RouteOrchidList)
	return nil
}

func (s *OrchidService) Delete(ctx context.Context, id int) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/orchids/%d", id)); err != nil {
		s.ui.Error(failureMessage(err, "Failed to delete orchid"))
		return err
	}
	invalidate(s.cache, kindOrchids)
	s.ui.Success("Orchid deleted successfully!")
	return nil
}
