package system

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"daytrack/internal/cli"
	"daytrack/internal/keyring"
	"daytrack/internal/storage/postgres"
)

type KeyringCmd struct {
	Set    KeyringSetCmd    `cmd:"" help:"Store a database connection string in the system keyring."`
	Get    KeyringGetCmd    `cmd:"" help:"Print the stored connection string with its password masked."`
	Delete KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
	Status KeyringStatusCmd `cmd:"" help:"Show keyring availability and whether a connection string is stored."`
}

type KeyringSetCmd struct {
	ConnString string `arg:"" help:"Postgres connection string (URL or DSN form)."`
}

func (c *KeyringSetCmd) Run(ctx *cli.Context) error {
	// Embedded passwords are allowed here: the keyring is exactly where
	// they belong.
	if _, err := postgres.ValidateConnString(c.ConnString); err != nil &&
		!errors.Is(err, postgres.ErrEmbeddedCredentials) {
		return err
	}
	if err := keyring.SetConnectionString(c.ConnString); err != nil {
		return fmt.Errorf("failed to store connection string: %w", err)
	}
	fmt.Println("Connection string stored in system keyring")
	return nil
}

type KeyringGetCmd struct{}

func (c *KeyringGetCmd) Run(ctx *cli.Context) error {
	connStr, err := keyring.GetConnectionString()
	if errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("no connection string stored, run 'daytrack keyring set'")
	}
	if err != nil {
		return err
	}
	fmt.Println(maskPassword(connStr))
	return nil
}

type KeyringDeleteCmd struct{}

func (c *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		return fmt.Errorf("failed to delete connection string: %w", err)
	}
	fmt.Println("Connection string removed from system keyring")
	return nil
}

type KeyringStatusCmd struct{}

func (c *KeyringStatusCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		fmt.Println("System keyring: unavailable")
		return nil
	}
	fmt.Println("System keyring: available")

	_, err := keyring.GetConnectionString()
	switch {
	case err == nil:
		fmt.Println("Connection string: stored")
	case errors.Is(err, keyring.ErrNotFound):
		fmt.Println("Connection string: not stored")
	default:
		return err
	}
	return nil
}

// maskPassword hides the password portion of a connection string so it can be
// printed safely.
func maskPassword(connStr string) string {
	if u, err := url.Parse(connStr); err == nil && u.User != nil {
		if _, has := u.User.Password(); has {
			u.User = url.UserPassword(u.User.Username(), "*****")
			return u.String()
		}
		return connStr
	}

	parts := strings.Fields(connStr)
	for i, part := range parts {
		if strings.HasPrefix(strings.ToLower(part), "password=") {
			parts[i] = "password=*****"
		}
	}
	return strings.Join(parts, " ")
}
