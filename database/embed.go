// Package database — embedded migration files.
//
// The migration SQL is compiled into the binary, so a deployed binary needs
// no files next to it. Access the subdirectory with
// fs.Sub(EmbeddedMigrations, "migrations").
package database

import "embed"

// EmbeddedMigrations contains the SQL files under migrations/.
//
//go:embed migrations/*.sql
var EmbeddedMigrations embed.FS
