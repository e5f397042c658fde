package registry

import "embed"

//go:embed migrations/main/*.sql
var mainMigrations embed.FS

//go:embed migrations/crate/*.sql
var crateMigrations embed.FS
