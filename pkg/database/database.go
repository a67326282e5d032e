package database

import (
	"fmt"
	"time"

	"github.com/be3health/patient-registry/internal/config"
	"github.com/be3health/patient-registry/internal/domain"
	"github.com/be3health/patient-registry/internal/domain/patient"
	"github.com/be3health/patient-registry/internal/domain/plan"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		PrepareStmt:    true,
		TranslateError: true,
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: cfg.DSN(),
	}), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("running database migrations")
	start := time.Now()

	schemas := []string{"registry", "auth", "audit"} // logical namespace
	for _, schema := range schemas {
		if err := db.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schema)).Error; err != nil {
			return fmt.Errorf("creating schema %s: %w", schema, err)
		}
	}

	models := []any{
		&domain.User{},
		&domain.AuditLog{},
		&plan.Plan{},
		&patient.Patient{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto-migrating models: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("creating indexes: %w", err)
	}

	if err := seedPlans(db, log); err != nil {
		return fmt.Errorf("seeding plans: %w", err)
	}

	log.Info("migrations completed", zap.Duration("duration", time.Since(start)))
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []struct {
		name  string
		query string
	}{
		// CPF uniqueness is enforced here, not just by the validator's
		// read-then-write check: only one active patient may hold a
		// non-empty CPF at a time.
		{
			name:  "ux_patients_cpf_active",
			query: `CREATE UNIQUE INDEX IF NOT EXISTS ux_patients_cpf_active ON registry.patients (cpf) WHERE active AND cpf <> ''`,
		},
		{
			name:  "idx_patients_name",
			query: `CREATE INDEX IF NOT EXISTS idx_patients_name ON registry.patients (first_name, last_name)`,
		},
		{
			name:  "idx_plans_active_name",
			query: `CREATE INDEX IF NOT EXISTS idx_plans_active_name ON registry.plans (name) WHERE active`,
		},
	}

	for _, idx := range indexes {
		if err := db.Exec(idx.query).Error; err != nil {
			return fmt.Errorf("creating index %s: %w", idx.name, err)
		}
	}

	return nil
}

// seedPlans loads the insurance-plan reference data on first run.
// Plans have no write API here; an empty table would make every
// planId reference fail validation.
func seedPlans(db *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := db.Model(&plan.Plan{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	plans := []plan.Plan{
		{Name: "Amil", Active: true},
		{Name: "Bradesco Saúde", Active: true},
		{Name: "Hapvida", Active: true},
		{Name: "NotreDame Intermédica", Active: true},
		{Name: "Porto Seguro Saúde", Active: true},
		{Name: "SulAmérica", Active: true},
		{Name: "Unimed", Active: true},
	}
	if err := db.Create(&plans).Error; err != nil {
		return err
	}

	log.Info("seeded insurance plans", zap.Int("count", len(plans)))
	return nil
}
