package migrations

import (
	"embed"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// goose keeps its dialect and filesystem in package globals.
var mu sync.Mutex

type dialect struct {
	name string
	dir  string
}

var dialects = map[string]dialect{
	"pgx":    {name: "postgres", dir: "postgres"},
	"sqlite": {name: "sqlite3", dir: "sqlite"},
}

// Apply runs every pending migration for the connection's driver.
func Apply(db *sqlx.DB, logger *zap.Logger) error {
	d, ok := dialects[db.DriverName()]
	if !ok {
		return fmt.Errorf("migrations: unsupported driver %q", db.DriverName())
	}

	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(files)
	goose.SetLogger(gooseLogger{logger.Sugar()})
	if err := goose.SetDialect(d.name); err != nil {
		return fmt.Errorf("migrations: set dialect: %w", err)
	}
	if err := goose.Up(db.DB, d.dir); err != nil {
		return fmt.Errorf("migrations: up: %w", err)
	}
	return nil
}

// Version reports the applied schema version.
func Version(db *sqlx.DB) (int64, error) {
	d, ok := dialects[db.DriverName()]
	if !ok {
		return 0, fmt.Errorf("migrations: unsupported driver %q", db.DriverName())
	}

	mu.Lock()
	defer mu.Unlock()

	if err := goose.SetDialect(d.name); err != nil {
		return 0, err
	}
	return goose.GetDBVersion(db.DB)
}

type gooseLogger struct {
	*zap.SugaredLogger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.Infof(format, v...)
}
