package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/MinhAlfred/orchidstore/internal/client/models"
)

func (a *App) ListUsers(ctx context.Context) error {
	users, err := a.accounts.List(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		printlnFn(fmt.Sprintf("%4d  %-25s %-30s %s", u.ID, u.Name, u.Email, u.RoleName))
	}
	return nil
}

// EditUser changes a user's name and role assignment.
func (a *App) EditUser(ctx context.Context, id string) error {
	userID, err := strconv.Atoi(id)
	if err != nil {
		printlnFn("Invalid user id:", id)
		return err
	}

	current, err := a.accounts.Get(ctx, userID)
	if err != nil {
		return err
	}
	printlnFn("Editing", current.Email)

	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		name = current.Name
	}

	roleID, err := GetInt(a.reader, "Enter role id", os.Stdout)
	if err != nil {
		return err
	}

	return a.accounts.Update(ctx, userID, models.AccountUpdateRequest{Name: name, RoleID: roleID})
}

func (a *App) DeleteUser(ctx context.Context, id string) error {
	userID, err := strconv.Atoi(id)
	if err != nil {
		printlnFn("Invalid user id:", id)
		return err
	}
	return a.accounts.Delete(ctx, userID)
}
