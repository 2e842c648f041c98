package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-users-api/internal/adapter"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/models"
)

// Usage lists the supported commands.
const Usage = `usage: users-client [-a address] [-timeout duration] <command>

commands:
  list                     list every user
  get <id>                 show one user
  create <id> <name> <age> create a user
  delete <id>              delete a user
  version                  print build information`

type App struct {
	users adapter.UsersClient
	out   io.Writer

	logger *logger.Logger
}

func NewApp(users adapter.UsersClient, out io.Writer, logger *logger.Logger) (*App, error) {
	if users == nil {
		return nil, ErrNoUsersClient
	}

	return &App{users: users, out: out, logger: logger}, nil
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given\n%s", ErrInvalidArguments, Usage)
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("command", command).Strs("args", rest).Msg("running command")

	switch command {
	case "list":
		return a.list(ctx, rest)
	case "get":
		return a.get(ctx, rest)
	case "create":
		return a.create(ctx, rest)
	case "delete":
		return a.delete(ctx, rest)
	default:
		return fmt.Errorf("%w: %q\n%s", ErrUnknownCommand, command, Usage)
	}
}

func (a *App) list(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: list takes no arguments", ErrInvalidArguments)
	}

	users, err := a.users.List(ctx)
	if err != nil {
		return err
	}

	return a.printJSON(users)
}

func (a *App) get(ctx context.Context, args []string) error {
	id, err := parseID(args, 1)
	if err != nil {
		return err
	}

	user, err := a.users.Get(ctx, id)
	if err != nil {
		return err
	}

	return a.printJSON(user)
}

func (a *App) create(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("%w: create needs <id> <name> <age>", ErrInvalidArguments)
	}

	id, err := parseID(args[:1], 1)
	if err != nil {
		return err
	}

	// the name may contain spaces when not quoted
	name := strings.Join(args[1:len(args)-1], " ")
	age, err := strconv.Atoi(args[len(args)-1])
	if err != nil {
		return fmt.Errorf("%w: age %q is not an integer", ErrInvalidArguments, args[len(args)-1])
	}

	message, err := a.users.Create(ctx, models.User{ID: id, Name: name, Age: age})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, message)
	return err
}

func (a *App) delete(ctx context.Context, args []string) error {
	id, err := parseID(args, 1)
	if err != nil {
		return err
	}

	message, err := a.users.Delete(ctx, id)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, message)
	return err
}

func (a *App) printJSON(v any) error {
	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func parseID(args []string, want int) (int64, error) {
	if len(args) != want {
		return 0, fmt.Errorf("%w: expected <id>", ErrInvalidArguments)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q is not an integer", ErrInvalidArguments, args[0])
	}

	return id, nil
}
