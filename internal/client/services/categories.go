package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MinhAlfred/orchidstore/internal/client/models"
	"github.com/MinhAlfred/orchidstore/internal/client/query"
	"github.com/MinhAlfred/orchidstore/internal/logging"
)

type CategoryService struct {
	api   Transport
	cache *query.Cache
	ui    Notifier
	log   logging.Logger
}

func NewCategoryService(api Transport, cache *query.Cache, ui Notifier, log logging.Logger) *CategoryService {
	return &CategoryService{api: api, cache: cache, ui: ui, log: log}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := query.GetOrFetch(ctx, s.cache, query.Key(kindCategories), func(ctx context.Context) ([]models.Category, error) {
		var out []models.Category
		if err := s.api.Get(ctx, "/categories", &out); err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		s.ui.Error(failureMessage(err, "Failed to fetch categories"))
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, id int) (*models.Category, error) {
	category, err := query.GetOrFetch(ctx, s.cache, query.Key(kindCategories, strconv.Itoa(id)), func(ctx context.Context) (*models.Category, error) {
		var out models.Category
		if err := s.api.Get(ctx, fmt.Sprintf("/categories/%d", id), &out); err != nil {
			return nil, err
		}
		return &out, nil
	})
	if err != nil {
		s.ui.Error(failureMessage(err, "Failed to fetch category details"))
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Create(ctx context.Context, req models.CategoryRequest) error {
	if err := s.api.Post(ctx, "/categories", req, nil); err != nil {
		s.ui.Error(failureMessage(err, "Failed to create category"))
		return err
	}
	invalidate(s.cache, kindCategories)
	s.ui.Success("Category created successfully!")
	return nil
}

func (s *CategoryService) Update(ctx context.Context, id int, req models.CategoryRequest) error {
	if err := s.api.Put(ctx, fmt.Sprintf("/categories/%d", id), req, nil); err != nil {
		s.ui.Error(failureMessage(err, "Failed to update category"))
		return err
	}
	invalidate(s.cache, kindCategories)
	s.ui.Success("Category updated successfully!")
	return nil
}

func (s *CategoryService) Delete(ctx context.Context, id int) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/categories/%d", id)); err != nil {
		s.ui.Error(failureMessage(err, "Failed to delete category"))
		return err
	}
	invalidate(s.cache, kindCategories)
	s.ui.Success("Category deleted successfully!")
	return nil
}
