package shared

import (
	"testing"
)

func TestMigrations(t *testing.T) {
	t.Run("RunMigrations", func(t *testing.T) {
		t.Run("creates the sync_log table", func(t *testing.T) {
			db, err := NewDatabase(":memory:")
			if err != nil {
				t.Fatalf("failed to open database: %v", err)
			}
			defer db.Close()

			if err := RunMigrations(db); err != nil {
				t.Fatalf("failed to run migrations: %v", err)
			}

			var name string
			err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='sync_log'").Scan(&name)
			if err != nil {
				t.Fatalf("sync_log table missing: %v", err)
			}
		})

		t.Run("is idempotent", func(t *testing.T) {
			db, err := NewDatabase(":memory:")
			if err != nil {
				t.Fatalf("failed to open database: %v", err)
			}
			defer db.Close()

			if err := RunMigrations(db); err != nil {
				t.Fatalf("first run failed: %v", err)
			}
			if err := RunMigrations(db); err != nil {
				t.Fatalf("second run failed: %v", err)
			}

			var count int
			if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
				t.Fatalf("failed to count migrations: %v", err)
			}
			if count != 1 {
				t.Errorf("expected 1 recorded migration, got %d", count)
			}
		})
	})

	t.Run("RollbackMigration", func(t *testing.T) {
		t.Run("drops the sync_log table", func(t *testing.T) {
			db, err := NewDatabase(":memory:")
			if err != nil {
				t.Fatalf("failed to open database: %v", err)
			}
			defer db.Close()

			if err := RunMigrations(db); err != nil {
				t.Fatalf("failed to run migrations: %v", err)
			}
			if err := RollbackMigration(db); err != nil {
				t.Fatalf("failed to rollback: %v", err)
			}

			var name string
			err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='sync_log'").Scan(&name)
			if err == nil {
				t.Error("expected sync_log table to be dropped")
			}
		})

		t.Run("errors with nothing applied", func(t *testing.T) {
			db, err := NewDatabase(":memory:")
			if err != nil {
				t.Fatalf("failed to open database: %v", err)
			}
			defer db.Close()

			if err := createMigrationsTable(db); err != nil {
				t.Fatalf("failed to create migrations table: %v", err)
			}

			if err := RollbackMigration(db); err == nil {
				t.Error("expected error with no applied migrations")
			}
		})
	})
}
