package database

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect captures the few SQL differences between the supported servers.
type Dialect struct {
	Name   string
	Driver string // database/sql driver name

	// emailDomain extracts the part of presensi.email after the last '@'.
	emailDomain string
	numbered    bool
}

var (
	MySQL = Dialect{
		Name:        "mysql",
		Driver:      "mysql",
		emailDomain: "SUBSTRING_INDEX(email, '@', -1)",
	}
	Postgres = Dialect{
		Name:        "postgres",
		Driver:      "pgx",
		emailDomain: "regexp_replace(email, '^.*@', '')",
		numbered:    true,
	}
)

// DialectFor maps a configured driver name to its Dialect.
func DialectFor(name string) (Dialect, error) {
	switch name {
	case MySQL.Name:
		return MySQL, nil
	case Postgres.Name:
		return Postgres, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database driver %q", name)
	}
}

// Rebind rewrites '?' placeholders into the dialect's bind syntax.
func (d Dialect) Rebind(query string) string {
	if !d.numbered {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
