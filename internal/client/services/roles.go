package services

import (
	"context"
	"fmt"

	"github.com/MinhAlfred/orchidstore/internal/client/models"
	"github.com/MinhAlfred/orchidstore/internal/client/query"
	"github.com/MinhAlfred/orchidstore/internal/logging"
)

type RoleService struct {
	api   Transport
	cache *query.Cache
	ui    Notifier
	log   logging.Logger
}

func NewRoleService(api Transport, cache *query.Cache, ui Notifier, log logging.Logger) *RoleService {
	return &RoleService{api: api, cache: cache, ui: ui, log: log}
}

func (s *RoleService) List(ctx context.Context) ([]models.Role, error) {
	roles, err := query.GetOrFetch(ctx, s.cache, query.Key(kindRoles), func(ctx context.Context) ([]models.Role, error) {
		var out []models.Role
		if err := s.api.Get(ctx, "/roles", &out); err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		s.ui.Error(failureMessage(err, "Failed to fetch roles"))
		return nil, err
	}
	return roles, nil
}

func (s *RoleService) Create(ctx context.Context, req models.RoleRequest) error {
	if err := s.api.Post(ctx, "/roles", req, nil); err != nil {
		s.ui.Error(failureMessage(err, "Failed to create role"))
		return err
	}
	invalidate(s.cache, kindRoles)
	s.ui.Success("Role created successfully!")
	return nil
}

func (s *RoleService) Update(ctx context.Context, id int, req models.RoleRequest) error {
	if err := s.api.Put(ctx, fmt.Sprintf("/roles/%d", id), req, nil); err != nil {
		s.ui.Error(failureMessage(err, "Failed to update role"))
		return err
	}
	invalidate(s.cache, kindRoles)
	s.ui.Success("Role updated successfully!")
	return nil
}

func (s *RoleService) Delete(ctx context.Context, id int) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/roles/%d", id)); err != nil {
		s.ui.Error(failureMessage(err, "Failed to delete role"))
		return err
	}
	invalidate(s.cache, kindRoles)
	s.ui.Success("Role deleted successfully!")
	return nil
}
