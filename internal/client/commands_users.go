package client

import (
	"context"
	"flag"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/models"
)

func (a *App) version(ctx context.Context, fs *flag.FlagSet, args []string) error {
	if _, err := parse(fs, args); err != nil {
		return err
	}

	version, err := a.adapter.Version(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, version)
	return err
}

func (a *App) register(ctx context.Context, fs *flag.FlagSet, args []string) error {
	var req models.RegisterUserRequest
	fs.StringVar(&req.Username, "username", "", "login name")
	fs.StringVar(&req.Name, "name", "", "display name")
	fs.StringVar(&req.Password, "password", "", "password")
	if _, err := parse(fs, args); err != nil {
		return err
	}

	user, err := a.adapter.Register(ctx, req)
	if err != nil {
		return err
	}
	return a.printJSON(user)
}

// login prints the issued token; pass it back via -token or CONTACTS_TOKEN.
func (a *App) login(ctx context.Context, fs *flag.FlagSet, args []string) error {
	var req models.LoginUserRequest
	fs.StringVar(&req.Username, "username", "", "login name")
	fs.StringVar(&req.Password, "password", "", "password")
	if _, err := parse(fs, args); err != nil {
		return err
	}

	if _, err := a.adapter.Login(ctx, req); err != nil {
		return err
	}

	_, err := fmt.Fprintln(a.out, a.adapter.Token())
	return err
}

func (a *App) currentUser(ctx context.Context, fs *flag.FlagSet, args []string) error {
	if _, err := parse(fs, args); err != nil {
		return err
	}

	user, err := a.adapter.CurrentUser(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(user)
}

func (a *App) updateCurrentUser(ctx context.Context, fs *flag.FlagSet, args []string) error {
	var name, password string
	fs.StringVar(&name, "name", "", "new display name")
	fs.StringVar(&password, "password", "", "new password")
	given, err := parse(fs, args)
	if err != nil {
		return err
	}

	user, err := a.adapter.UpdateCurrentUser(ctx, models.UpdateUserRequest{
		Name:     optional(given, "name", name),
		Password: optional(given, "password", password),
	})
	if err != nil {
		return err
	}
	return a.printJSON(user)
}

func (a *App) logout(ctx context.Context, fs *flag.FlagSet, args []string) error {
	if _, err := parse(fs, args); err != nil {
		return err
	}

	if err := a.adapter.Logout(ctx); err != nil {
		return err
	}

	_, err := fmt.Fprintln(a.out, "logged out")
	return err
}
