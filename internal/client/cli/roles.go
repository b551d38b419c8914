package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/MinhAlfred/orchidstore/internal/client/models"
)

func (a *App) ListRoles(ctx context.Context) error {
	roles, err := a.roles.List(ctx)
	if err != nil {
		return err
	}
	for _, r := range roles {
		printlnFn(fmt.Sprintf("%4d  %s", r.ID, r.Name))
	}
	return nil
}

func (a *App) AddRole(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter role name", os.Stdout)
	if err != nil {
		return err
	}
	return a.roles.Create(ctx, models.RoleRequest{Name: name})
}

func (a *App) EditRole(ctx context.Context, id string) error {
	roleID, err := strconv.Atoi(id)
	if err != nil {
		printlnFn("Invalid role id:", id)
		return err
	}
	name, err := getSimpleText(a.reader, "Enter role name", os.Stdout)
	if err != nil {
		return err
	}
	return a.roles.Update(ctx, roleID, models.RoleRequest{Name: name})
}

func (a *App) DeleteRole(ctx context.Context, id string) error {
	roleID, err := strconv.Atoi(id)
	if err != nil {
		printlnFn("Invalid role id:", id)
		return err
	}
	return a.roles.Delete(ctx, roleID)
}
