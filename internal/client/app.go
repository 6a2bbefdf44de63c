package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/go-contact-keeper/internal/adapter"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
)

type command struct {
	usage string
	run   func(ctx context.Context, fs *flag.FlagSet, args []string) error
}

type App struct {
	adapter  adapter.ServerAdapter
	out      io.Writer
	commands map[string]command

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		adapter: serverAdapter,
		out:     out,
		logger:  logger,
	}

	a.commands = map[string]command{
		"version":   {usage: "version", run: a.version},
		"register":  {usage: "register -username U -name N -password P", run: a.register},
		"login":     {usage: "login -username U -password P", run: a.login},
		"me":        {usage: "me", run: a.currentUser},
		"update-me": {usage: "update-me [-name N] [-password P]", run: a.updateCurrentUser},
		"logout":    {usage: "logout", run: a.logout},
		"create":    {usage: "create -first-name F [-last-name L] [-email E] [-phone P]", run: a.createContact},
		"get":       {usage: "get ID", run: a.getContact},
		"update":    {usage: "update [-first-name F] [-last-name L] [-email E] [-phone P] ID", run: a.updateContact},
		"delete":    {usage: "delete ID", run: a.removeContact},
		"search":    {usage: "search [-name N] [-email E] [-phone P] [-page N] [-size N]", run: a.searchContacts},
	}

	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: expected a command\n%s", ErrMissingArgs, a.Usage())
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, args[0], a.Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return cmd.run(ctx, fs, args[1:])
}

// Usage lists the sub-commands in alphabetical order.
func (a *App) Usage() string {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("commands:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %s\n", a.commands[name].usage)
	}
	return b.String()
}

func (a *App) printJSON(v any) error {
	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// parse parses args and returns the names of the flags given explicitly.
func parse(fs *flag.FlagSet, args []string) (map[string]bool, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	given := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { given[f.Name] = true })
	return given, nil
}

// optional returns &value when the flag was given, nil otherwise.
func optional(given map[string]bool, name, value string) *string {
	if !given[name] {
		return nil
	}
	return &value
}

func singleArg(fs *flag.FlagSet, what string) (string, error) {
	if fs.NArg() != 1 || strings.TrimSpace(fs.Arg(0)) == "" {
		return "", fmt.Errorf("%w: %s expects exactly one %s", ErrMissingArgs, fs.Name(), what)
	}
	return fs.Arg(0), nil
}
