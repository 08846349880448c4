package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"kickitup/internal/api"
)

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	if a.session.LoggedIn() {
		printlnFn(fmt.Sprintf("already logged in as %s", a.status()))
		return nil
	}

	username, err := GetSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword("Password", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, username, password); err != nil {
		if errors.Is(err, api.ErrValidation) {
			printlnFn(err.Error())
			return nil
		}
		a.notes.Error(failureMessage(err))
		return nil
	}
	a.notes.Success(fmt.Sprintf("logged in as %s", a.status()))
	return nil
}

// Register prompts for account details and starts a session on success.
func (a *App) Register(ctx context.Context) error {
	if a.session.LoggedIn() {
		printlnFn(fmt.Sprintf("already logged in as %s", a.status()))
		return nil
	}

	var req api.RegisterRequest
	var err error
	if req.Username, err = GetSimpleText(a.reader, "Username", os.Stdout); err != nil {
		return err
	}
	if req.Email, err = GetSimpleText(a.reader, "Email", os.Stdout); err != nil {
		return err
	}
	if req.Password, err = GetPassword("Password", os.Stdout); err != nil {
		return err
	}
	if req.FullName, err = GetSimpleText(a.reader, "Full name", os.Stdout); err != nil {
		return err
	}
	if req.PhoneNumber, err = GetSimpleText(a.reader, "Phone number", os.Stdout); err != nil {
		return err
	}
	if req.Address, err = GetSimpleText(a.reader, "Address", os.Stdout); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		printlnFn(err.Error())
		return nil
	}

	if err := a.session.Register(ctx, req); err != nil {
		a.notes.Error(failureMessage(err))
		return nil
	}
	a.notes.Success(fmt.Sprintf("welcome, %s", a.status()))
	return nil
}

// Logout ends the session and forgets the stored token.
func (a *App) Logout(ctx context.Context) error {
	if !a.session.LoggedIn() {
		printlnFn("not logged in")
		return nil
	}
	if err := a.session.Logout(ctx); err != nil {
		a.log.Warn(ctx, "logout cleanup failed", "error", err)
	}
	a.notes.Info("logged out")
	return nil
}
