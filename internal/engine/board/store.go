package board

import (
	"context"
	"log/slog"
)

// Open picks a backend: Postgres when databaseURL is set, SQLite otherwise.
func Open(ctx context.Context, databaseURL, sqlitePath string) (Store, error) {
	if databaseURL != "" {
		return ConnectPostgres(ctx, databaseURL)
	}
	s, err := OpenSQLite(sqlitePath)
	if err != nil {
		return nil, err
	}
	slog.Info("board sqlite opened", slog.String("path", sqlitePath))
	return s, nil
}
