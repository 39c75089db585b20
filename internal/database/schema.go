package database

import _ "embed"

// Schema holds the DDL for all tables the service reads and writes.
// Applied by the integration tests; production databases are migrated
// out of band.
//
//go:embed schema.sql
var Schema string
