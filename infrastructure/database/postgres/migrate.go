package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate aplica os scripts em ordem alfabética; todos são idempotentes
func Migrate(ctx context.Context, conn Conn) error {
	names, err := fs.Glob(migrationFiles, "migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)

	for _, name := range names {
		script, err := migrationFiles.ReadFile(name)
		if err != nil {
			return fmt.Errorf("postgres: erro ao ler %s: %w", name, err)
		}

		if _, err := conn.ExecContext(ctx, string(script)); err != nil {
			return fmt.Errorf("postgres: erro ao aplicar %s: %w", name, err)
		}

		logrus.WithField("migration", name).Debug("postgres: migração aplicada")
	}

	return nil
}
