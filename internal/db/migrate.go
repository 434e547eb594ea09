package db

import (
	"time"

	"gorm.io/gorm"
)

// Migration is one schema change, identified so it is applied only once.
type Migration struct {
	ID  string
	SQL string
}

// Migrations are applied in order and embedded in the binary.
var Migrations = []Migration{
	{
		ID: "0000_initial",
		SQL: `CREATE TABLE IF NOT EXISTS entries (
			id text PRIMARY KEY NOT NULL,
			task_name text NOT NULL,
			project text,
			start_time datetime NOT NULL,
			end_time datetime,
			last_activity datetime,
			created_at datetime NOT NULL,
			updated_at datetime NOT NULL
		);`,
	},
}

type appliedMigration struct {
	ID        string    `gorm:"primaryKey;column:id"`
	AppliedAt time.Time `gorm:"column:applied_at;not null"`
}

func (appliedMigration) TableName() string {
	return "_migrations"
}

// Migrate applies any pending migrations. Each pending migration runs in
// its own transaction together with its tracking-table insert, so a failed
// migration leaves no partial state and a rerun picks up where it stopped.
func Migrate(gdb *gorm.DB) error {
	err := gdb.Exec(`CREATE TABLE IF NOT EXISTS _migrations (
		id text PRIMARY KEY NOT NULL,
		applied_at datetime NOT NULL
	);`).Error
	if err != nil {
		return wrapStoreErr("migrate", err)
	}

	var appliedIDs []string
	if err := gdb.Model(&appliedMigration{}).Pluck("id", &appliedIDs).Error; err != nil {
		return wrapStoreErr("migrate", err)
	}
	applied := make(map[string]bool, len(appliedIDs))
	for _, id := range appliedIDs {
		applied[id] = true
	}

	for _, m := range Migrations {
		if applied[m.ID] {
			continue
		}
		err := gdb.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(m.SQL).Error; err != nil {
				return err
			}
			return tx.Create(&appliedMigration{ID: m.ID, AppliedAt: time.Now()}).Error
		})
		if err != nil {
			return wrapStoreErr("migrate "+m.ID, err)
		}
	}

	return nil
}
