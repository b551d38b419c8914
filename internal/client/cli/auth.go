package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MinhAlfred/orchidstore/internal/client/models"
	"github.com/MinhAlfred/orchidstore/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. The auth service owns the
// outcome: on success it stores the token, installs the user, and navigates
// by role; on failure it surfaces the server's reason. The password buffer is
// wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	return a.auth.Login(ctx, email, string(password))
}

// Register prompts for the new account's details, asks for the password
// twice, and creates the account. On success the user lands on the login
// screen.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if string(password) != string(confirm) {
		printlnFn("Passwords do not match")
		return errors.New("passwords do not match")
	}

	return a.auth.Register(ctx, models.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: string(password),
	})
}

// Logout ends the session. The cart survives a logout; only the token and
// the in-memory user go away.
func (a *App) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}

// WhoAmI prints the current user. When the in-memory record has not resolved
// yet (a token exists but the startup fetch was skipped or failed), it falls
// back to the cached current-user read.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.session.User()
	if u == nil && a.isLoggedIn() {
		fetched, err := a.auth.CurrentUser(ctx)
		if err != nil {
			return err
		}
		u = fetched
	}
	if u == nil {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s> (%s)", u.Name, u.Email, u.RoleName))
	return nil
}
