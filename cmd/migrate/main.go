package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	databasepb "cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	"go.uber.org/zap"

	"github.com/murkotick/grocery-pos-service/internal/pkg/config"
	"github.com/murkotick/grocery-pos-service/internal/pkg/logging"
)

// Applies every migrations/*.sql file, in name order, to the configured
// Spanner database (typically the emulator for local dev).
//
// Usage (emulator):
//
//	export SPANNER_EMULATOR_HOST=localhost:9010
//	export SPANNER_DATABASE=projects/test-project/instances/emulator-instance/databases/test-db
//	go run ./cmd/migrate -dir migrations
func main() {
	dir := flag.String("dir", "migrations", "directory holding *.sql DDL files")
	flag.Parse()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	stmts, err := readMigrations(*dir)
	if err != nil {
		logger.Fatal("read DDL", zap.Error(err))
	}
	if len(stmts) == 0 {
		logger.Fatal("no DDL statements found", zap.String("dir", *dir))
	}

	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		logger.Fatal("database admin client", zap.Error(err))
	}
	defer admin.Close()

	op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   cfg.Spanner.Database,
		Statements: stmts,
	})
	if err != nil {
		logger.Fatal("UpdateDatabaseDdl", zap.Error(err))
	}
	if err := op.Wait(ctx); err != nil {
		logger.Fatal("UpdateDatabaseDdl wait", zap.Error(err))
	}

	logger.Info("schema applied",
		zap.Int("statements", len(stmts)),
		zap.String("database", cfg.Spanner.Database),
	)
}

func readMigrations(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	var out []string
	for _, f := range files {
		stmts, err := readDDLStatements(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f, err)
		}
		out = append(out, stmts...)
	}
	return out, nil
}

// readDDLStatements splits a file on ';' and drops blank statements and
// whole-line "--" comments.
func readDDLStatements(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sql := strings.ReplaceAll(string(b), "\r\n", "\n")

	var kept []string
	for _, line := range strings.Split(sql, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept = append(kept, line)
	}

	parts := strings.Split(strings.Join(kept, "\n"), ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if stmt := strings.TrimSpace(p); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out, nil
}
