// Package storage defines the provider interface and the JSON file backend.
// The sqlite and postgres backends live in subpackages.
package storage

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Kind identifies which backend a config path selects.
type Kind string

const (
	KindSQLite   Kind = "sqlite"
	KindPostgres Kind = "postgres"
	KindJSON     Kind = "json"
)

// KindForPath picks the backend from the config path shape: postgres URLs
// select postgres, a .json suffix selects the JSON file store, anything else
// is treated as a sqlite database path.
func KindForPath(path string) Kind {
	if strings.HasPrefix(path, "postgres://") || strings.HasPrefix(path, "postgresql://") {
		return KindPostgres
	}
	if strings.HasSuffix(path, ".json") {
		return KindJSON
	}
	return KindSQLite
}

// HasEmbeddedCredentials reports whether a postgres connection string
// carries a password inline. Such strings are rejected; credentials belong
// in the OS keyring.
func HasEmbeddedCredentials(connStr string) bool {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		_, isSet := u.User.Password()
		return isSet
	}

	for _, pair := range strings.Fields(connStr) {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) == 2 && strings.EqualFold(strings.TrimSpace(kv[0]), "password") {
			return true
		}
	}
	return false
}

// ExpandPath resolves a leading ~ against the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
