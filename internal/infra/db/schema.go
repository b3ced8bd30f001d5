package db

import _ "embed"

// SchemaSQL is the full database schema, embedded so test harnesses can
// bootstrap a fresh database without locating migration files on disk.
//
//go:embed schema.sql
var SchemaSQL string
