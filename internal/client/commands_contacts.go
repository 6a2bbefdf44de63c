package client

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/MKhiriev/go-contact-keeper/models"
)

type contactFlags struct {
	firstName, lastName, email, phone string
}

func (c *contactFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.firstName, "first-name", "", "first name")
	fs.StringVar(&c.lastName, "last-name", "", "last name")
	fs.StringVar(&c.email, "email", "", "email address")
	fs.StringVar(&c.phone, "phone", "", "phone number")
}

func (a *App) createContact(ctx context.Context, fs *flag.FlagSet, args []string) error {
	var flags contactFlags
	flags.register(fs)
	given, err := parse(fs, args)
	if err != nil {
		return err
	}

	contact, err := a.adapter.CreateContact(ctx, models.CreateContactRequest{
		FirstName: flags.firstName,
		LastName:  optional(given, "last-name", flags.lastName),
		Email:     optional(given, "email", flags.email),
		Phone:     optional(given, "phone", flags.phone),
	})
	if err != nil {
		return err
	}
	return a.printJSON(contact)
}

func (a *App) getContact(ctx context.Context, fs *flag.FlagSet, args []string) error {
	if _, err := parse(fs, args); err != nil {
		return err
	}
	id, err := singleArg(fs, "contact id")
	if err != nil {
		return err
	}

	contact, err := a.adapter.GetContact(ctx, id)
	if err != nil {
		return err
	}
	return a.printJSON(contact)
}

func (a *App) updateContact(ctx context.Context, fs *flag.FlagSet, args []string) error {
	var flags contactFlags
	flags.register(fs)
	given, err := parse(fs, args)
	if err != nil {
		return err
	}
	id, err := singleArg(fs, "contact id")
	if err != nil {
		return err
	}

	contact, err := a.adapter.UpdateContact(ctx, models.UpdateContactRequest{
		ID:        id,
		FirstName: optional(given, "first-name", flags.firstName),
		LastName:  optional(given, "last-name", flags.lastName),
		Email:     optional(given, "email", flags.email),
		Phone:     optional(given, "phone", flags.phone),
	})
	if err != nil {
		return err
	}
	return a.printJSON(contact)
}

func (a *App) removeContact(ctx context.Context, fs *flag.FlagSet, args []string) error {
	if _, err := parse(fs, args); err != nil {
		return err
	}
	id, err := singleArg(fs, "contact id")
	if err != nil {
		return err
	}

	if err = a.adapter.RemoveContact(ctx, id); err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "deleted %s\n", id)
	return err
}

func (a *App) searchContacts(ctx context.Context, fs *flag.FlagSet, args []string) error {
	var name, email, phone string
	var req models.SearchContactRequest
	fs.StringVar(&name, "name", "", "matches first or last name")
	fs.StringVar(&email, "email", "", "matches email")
	fs.StringVar(&phone, "phone", "", "matches phone")
	fs.IntVar(&req.Page, "page", 0, "page number, 1-based")
	fs.IntVar(&req.Size, "size", 0, "page size")
	given, err := parse(fs, args)
	if err != nil {
		return err
	}

	req.Name = optional(given, "name", name)
	req.Email = optional(given, "email", email)
	req.Phone = optional(given, "phone", phone)

	page, err := a.adapter.SearchContacts(ctx, req)
	if err != nil {
		return err
	}

	return a.printPage(page)
}

func (a *App) printPage(page models.Page[models.Contact]) error {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tFIRST NAME\tLAST NAME\tEMAIL\tPHONE")
	for _, c := range page.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.FirstName, deref(c.LastName), deref(c.Email), deref(c.Phone))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(a.out, "page %d of %d (size %d)\n",
		page.Paging.CurrentPage, page.Paging.TotalPages, page.Paging.Size)
	return err
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
