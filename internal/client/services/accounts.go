package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MinhAlfred/orchidstore/internal/client/models"
	"github.com/MinhAlfred/orchidstore/internal/client/query"
	"github.com/MinhAlfred/orchidstore/internal/logging"
)

type AccountService struct {
	api   Transport
	cache *query.Cache
	ui    Notifier
	log   logging.Logger
}

func NewAccountService(api Transport, cache *query.Cache, ui Notifier, log logging.Logger) *AccountService {
	return &AccountService{api: api, cache: cache, ui: ui, log: log}
}

func (s *AccountService) List(ctx context.Context) ([]models.Account, error) {
	accounts, err := query.GetOrFetch(ctx, s.cache, query.Key(kindAccounts), func(ctx context.Context) ([]models.Account, error) {
		var out []models.Account
		if err := s.api.Get(ctx, "/accounts", &out); err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		s.ui.Error(failureMessage(err, "Failed to fetch users"))
		return nil, err
	}
	return accounts, nil
}

func (s *AccountService) Get(ctx context.Context, id int) (*models.Account, error) {
	account, err := query.GetOrFetch(ctx, s.cache, query.Key(kindAccounts, strconv.Itoa(id)), func(ctx context.Context) (*models.Account, error) {
		var out models.Account
		if err := s.api.Get(ctx, fmt.Sprintf("/accounts/%d", id), &out); err != nil {
			return nil, err
		}
		return &out, nil
	})
	if err != nil {
		s.ui.Error(failureMessage(err, "Failed to fetch user details"))
		return nil, err
	}
	return account, nil
}

func (s *AccountService) Update(ctx context.Context, id int, req models.AccountUpdateRequest) error {
	if err := s.api.Put(ctx, fmt.Sprintf("/accounts/%d", id), req, nil); err != nil {
		s.ui.Error(failureMessage(err, "Failed to update user"))
		return err
	}
	invalidate(s.cache, kindAccounts)
	s.ui.Success("User updated successfully")
	return nil
}

func (s *AccountService) Delete(ctx context.Context, id int) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/accounts/%d", id)); err != nil {
		s.ui.Error(failureMessage(err, "Failed to delete user"))
		return err
	}
	invalidate(s.cache, kindAccounts)
	s.ui.Success("User deleted successfully")
	return nil
}
