package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/ragctl/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials and tries to authenticate.
// A rejected login prints the server's reason; the session keeps its prior
// state on any failure.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, username, password); err != nil {
		var apiErr *api.APIError
		switch {
		case errors.As(err, &apiErr):
			log.Printf("Login rejected: %s", apiErr.Detail)
		case errors.Is(err, api.ErrUnauthorized):
			log.Printf("Login rejected: %s", err.Error())
		default:
			log.Printf("Login unsuccessful: %s", err.Error())
		}
		return nil
	}

	log.Printf("Logged in as %s", a.session.CurrentUser().Username)
	return nil
}

// Logout drops the session. It always succeeds client-side; the server call
// behind it is best-effort.
func (a *App) Logout(ctx context.Context) {
	a.session.Logout(ctx)
	fmt.Println("Logged out")
}
