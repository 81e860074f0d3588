// Package data embeds the database provisioning scripts so the integration
// tests and the initdb job run the exact DDL shipped with the binary.
package data

import (
	_ "embed"
)

//go:embed initdb/mariadb/002-ddl-tables.sql
var InitdbMariaDBTables string

//go:embed initdb/mariadb/003-ddl-privileges.sql
var InitdbMariaDBPrivileges string
