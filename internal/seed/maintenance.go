package seed

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"sponsorly_backend/internal/models"
	"sponsorly_backend/internal/repositories"
)

var ErrUnknownCommand = errors.New("unknown command")

// Maintenance выполняет разовые операции над хранилищем из cmd/maintenance
type Maintenance struct {
	store *repositories.Store
	out   io.Writer
}

func NewMaintenance(store *repositories.Store, out io.Writer) *Maintenance {
	return &Maintenance{store: store, out: out}
}

// Usage печатает список команд
func (m *Maintenance) Usage() {
	fmt.Fprintln(m.out, `usage: maintenance <command> [flags]

commands:
  seed                 create demo creators and sponsors (existing emails are skipped)
  clear                delete all users and messages
  list-users           print all users
  prune-no-location    delete users without location
  delete-user -email   delete one user by email
  ping                 check store connectivity`)
}

// Run разбирает args (без имени программы) и выполняет команду
func (m *Maintenance) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		m.Usage()
		return ErrUnknownCommand
	}

	switch args[0] {
	case "seed":
		return m.Seed(ctx)
	case "clear":
		return m.Clear(ctx)
	case "list-users":
		return m.ListUsers(ctx)
	case "prune-no-location":
		return m.PruneNoLocation(ctx)
	case "delete-user":
		fs := flag.NewFlagSet("delete-user", flag.ContinueOnError)
		fs.SetOutput(m.out)
		email := fs.String("email", "", "email of the user to delete")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *email == "" {
			return errors.New("delete-user: -email is required")
		}
		return m.DeleteUser(ctx, *email)
	case "ping":
		return m.Ping(ctx)
	default:
		m.Usage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
}

func (m *Maintenance) Seed(ctx context.Context) error {
	res, err := Run(ctx, m.store.Users)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "created %d users, skipped %d existing (password: %s)\n", res.Created, res.Skipped, DefaultPassword)
	return nil
}

func (m *Maintenance) Clear(ctx context.Context) error {
	msgs, err := m.store.Messages.DeleteAll(ctx)
	if err != nil {
		return fmt.Errorf("clear messages: %w", err)
	}
	users, err := m.store.Users.DeleteAll(ctx)
	if err != nil {
		return fmt.Errorf("clear users: %w", err)
	}
	fmt.Fprintf(m.out, "deleted %d users and %d messages\n", users, msgs)
	return nil
}

func (m *Maintenance) ListUsers(ctx context.Context) error {
	users, err := m.store.Users.List(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(m.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EMAIL\tNAME\tROLE\tLOCATION\tCOMPANY\tBUDGET\tEMPLOYEES")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%s\t%s\t%s\n",
			u.Email, u.FirstName, u.LastName, u.Role,
			orDash(u.Location), orDash(u.CompanyName), orDash(u.Budget), orDash(u.NoOfEmployees))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	var creators, sponsors int
	for _, u := range users {
		switch u.Role {
		case models.UserRoleCreator:
			creators++
		case models.UserRoleSponsor:
			sponsors++
		}
	}
	fmt.Fprintf(m.out, "total: %d (creators: %d, sponsors: %d)\n", len(users), creators, sponsors)
	return nil
}

func (m *Maintenance) PruneNoLocation(ctx context.Context) error {
	n, err := m.store.Users.DeleteWithoutLocation(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "deleted %d users without location\n", n)
	return nil
}

func (m *Maintenance) DeleteUser(ctx context.Context, email string) error {
	deleted, err := m.store.Users.Delete(ctx, models.NormalizeEmail(email))
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("user %s: %w", email, repositories.ErrUserNotFound)
	}
	fmt.Fprintf(m.out, "deleted user %s\n", email)
	return nil
}

func (m *Maintenance) Ping(ctx context.Context) error {
	if err := m.store.Ping(ctx); err != nil {
		return fmt.Errorf("%s store unreachable: %w", m.store.Driver, err)
	}
	fmt.Fprintf(m.out, "%s store is reachable\n", m.store.Driver)
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
