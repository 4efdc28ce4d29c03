package cli

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// WhoAmI prints the verified identity behind the current session. When the
// bearer token happens to be a JWT its expiry is shown too; the parse is
// unverified and display-only, the session layer still treats the token as
// opaque.
func (a *App) WhoAmI() {
	user := a.session.CurrentUser()
	if user == nil {
		fmt.Println("Not logged in")
		return
	}

	fmt.Printf("%s <%s>\n", user.Username, user.Email)
	if !user.IsActive {
		fmt.Println("  (inactive account)")
	}

	if exp := tokenExpiry(a.session.Token()); exp != nil {
		fmt.Printf("  token expires %s\n", exp.Local().Format(time.RFC1123))
	}
}

// tokenExpiry extracts the exp claim from a JWT without verifying the
// signature. Returns nil when the token is not a JWT or carries no expiry.
func tokenExpiry(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	parser := jwt.NewParser()
	tok, _, err := parser.ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return nil
	}
	exp, err := tok.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	return &exp.Time
}
