package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/candidatetracker/internal/client/dashboard"
	"github.com/dmitrijs2005/candidatetracker/internal/client/services"
	"github.com/dmitrijs2005/candidatetracker/internal/common"
)

// getSimpleText, getPassword and getChoice are indirections used to
// facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getChoice     = GetChoice
)

var roles = []string{common.RoleCandidate, common.RoleAdmin}

func (a *App) credentials() (string, []byte, error) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	return email, password, nil
}

// authMessage is the text shown for a login or registration failure.
func authMessage(err error) string {
	var ae *services.AuthError
	if errors.As(err, &ae) {
		return ae.Message
	}
	return err.Error()
}

// Register prompts for email, password and role and creates the account.
// The user still has to log in afterwards.
func (a *App) Register(ctx context.Context) error {
	email, password, err := a.credentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	role, err := getChoice(a.reader, "Role", roles, common.RoleCandidate, a.out)
	if err != nil {
		return err
	}

	if err := a.authService.Register(ctx, email, password, role); err != nil {
		a.alert("%s", authMessage(err))
		return err
	}
	a.success("Registration successful! Please login.")
	return nil
}

// Login authenticates once. A failure is printed inline and the session
// stays signed out.
func (a *App) Login(ctx context.Context) error {
	email, password, err := a.credentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, email, password); err != nil {
		a.alert("%s", authMessage(err))
		a.log.Debug(ctx, "login failed", "email", email, "error", err)
		return err
	}

	a.success("Welcome, %s", email)
	a.afterSignIn(ctx)
	return nil
}

// afterSignIn prepares the workspace of the signed-in role.
func (a *App) afterSignIn(ctx context.Context) {
	switch a.role() {
	case common.RoleAdmin:
		a.filter = dashboard.DefaultFilter()
		if err := a.candidates.Refresh(ctx); err != nil {
			a.alert("Could not load candidates: %s", err)
			a.log.Warn(ctx, "refresh failed", "error", err)
		}
	case common.RoleCandidate:
		a.form.Reset()
	}
}

// Logout signs out unconditionally and drops the local candidate list and
// form state.
func (a *App) Logout(ctx context.Context) error {
	err := a.authService.Logout(ctx)
	if err != nil {
		a.log.Warn(ctx, "could not remove stored session", "error", err)
	}
	a.candidates.Reset()
	a.form.Reset()
	a.filter = dashboard.DefaultFilter()
	a.notice("Logged out")
	return err
}
