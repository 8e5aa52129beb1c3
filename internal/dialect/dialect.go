// Copyright (c) 2025 Seedgen
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dialect

import (
	"fmt"
	"strings"
)

// Dialect identifies the SQL flavor the generated seed script targets.
type Dialect string

const (
	MySQL     Dialect = "mysql"
	Postgres  Dialect = "postgres"
	SQLServer Dialect = "sqlserver"
)

// Default is used when the user gives no dialect or an unrecognized one.
const Default = MySQL

// All lists the supported dialects in display order.
func All() []Dialect {
	return []Dialect{MySQL, Postgres, SQLServer}
}

// Parse maps a user-supplied dialect name to a Dialect. Unrecognized
// names fall back to MySQL and report ok=false so callers can warn.
func Parse(s string) (d Dialect, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mysql", "mariadb":
		return MySQL, true
	case "postgres", "postgresql", "pg":
		return Postgres, true
	case "sqlserver", "mssql", "sql server":
		return SQLServer, true
	default:
		return Default, false
	}
}

// IDType returns the column type for primary keys in this dialect.
// UUID keys and auto-increment keys need different DDL per engine,
// and the model is told which one to emit.
func (d Dialect) IDType(useUUID bool) string {
	switch d {
	case Postgres:
		if useUUID {
			return "UUID"
		}
		return "SERIAL"
	case SQLServer:
		if useUUID {
			return "UNIQUEIDENTIFIER"
		}
		return "INT IDENTITY(1,1)"
	default:
		if useUUID {
			return "CHAR(36)"
		}
		return "INT AUTO_INCREMENT"
	}
}

// PromptNotes returns dialect-specific instructions appended to the
// generation prompt, covering the quoting and ID conventions the
// target engine expects.
func (d Dialect) PromptNotes(useUUID bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Target SQL dialect: %s.\n", d)
	fmt.Fprintf(&b, "Primary key columns use %s.\n", d.IDType(useUUID))
	switch d {
	case Postgres:
		b.WriteString("Use single-quoted string literals and gen_random_uuid() is NOT available; write UUID literals inline.\n")
		if !useUUID {
			b.WriteString("Do not insert explicit id values for SERIAL columns; reference rows via subselects where needed.\n")
		}
	case SQLServer:
		b.WriteString("Use single-quoted string literals; N'' prefixes are not required.\n")
		if !useUUID {
			b.WriteString("Do not insert explicit id values for IDENTITY columns; reference rows via subselects where needed.\n")
		}
	default:
		b.WriteString("Use single-quoted string literals and backticks only when an identifier needs escaping.\n")
		if !useUUID {
			b.WriteString("Do not insert explicit id values for AUTO_INCREMENT columns; reference rows via subselects where needed.\n")
		}
	}
	return b.String()
}

func (d Dialect) String() string {
	return string(d)
}
