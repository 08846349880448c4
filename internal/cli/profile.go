package cli

import (
	"context"
	"os"
	"time"

	"kickitup/internal/api"
	"kickitup/internal/session"
)

// Profile renders the current user's profile from the session.
func (a *App) Profile(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	user := a.session.User()
	printlnFn("username: " + user.Username)
	printlnFn("email:    " + user.Email)
	if user.FullName != "" {
		printlnFn("name:     " + user.FullName)
	}
	if user.PhoneNumber != "" {
		printlnFn("phone:    " + user.PhoneNumber)
	}
	if user.Address != "" {
		printlnFn("address:  " + user.Address)
	}
	if exp, ok := session.TokenExpiry(a.session.Token()); ok {
		printlnFn("session expires: " + exp.Local().Format(time.RFC822))
	}
	return nil
}

// EditProfile updates the mutable profile fields and refreshes the session
// copy so every view sees the new values.
func (a *App) EditProfile(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	user := a.session.User()
	var req api.ProfileUpdateRequest
	var err error
	if req.FullName, err = GetTextWithDefault(a.reader, "Full name", user.FullName, os.Stdout); err != nil {
		return err
	}
	if req.PhoneNumber, err = GetTextWithDefault(a.reader, "Phone number", user.PhoneNumber, os.Stdout); err != nil {
		return err
	}
	if req.Address, err = GetTextWithDefault(a.reader, "Address", user.Address, os.Stdout); err != nil {
		return err
	}

	_ = a.performMutation(ctx, func(ctx context.Context) error {
		return a.api.UpdateProfile(ctx, req)
	}, "profile updated", a.session.RefreshProfile)
	return nil
}

// ChangePassword collects the current and new password and submits them.
func (a *App) ChangePassword(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	var req api.PasswordChangeRequest
	var err error
	if req.CurrentPassword, err = GetPassword("Current password", os.Stdout); err != nil {
		return err
	}
	if req.NewPassword, err = GetPassword("New password", os.Stdout); err != nil {
		return err
	}
	confirm, err := GetPassword("Repeat new password", os.Stdout)
	if err != nil {
		return err
	}
	if confirm != req.NewPassword {
		printlnFn("passwords do not match")
		return nil
	}
	if err := req.Validate(); err != nil {
		printlnFn(err.Error())
		return nil
	}

	_ = a.performMutation(ctx, func(ctx context.Context) error {
		return a.api.ChangePassword(ctx, req)
	}, "password changed")
	return nil
}
