package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq" // PostgreSQL driver

	"exercise-api/internal/config"
	"exercise-api/internal/database/migrations"
)

var (
	// ErrNoChange возвращается, когда нет миграций для применения.
	ErrNoChange = errors.New("no change")

	// ErrDirtyState возвращается, когда миграции находятся в "грязном" состоянии.
	// Это означает, что миграция была прервана и требует ручного вмешательства.
	ErrDirtyState = errors.New("database is in dirty state")

	// ErrUnsupportedDialect возвращается при попытке мигрировать не-PostgreSQL базу.
	ErrUnsupportedDialect = errors.New("migrations are supported only for postgres")
)

// Migrator управляет версиями схемы PostgreSQL через golang-migrate.
// Миграции встроены в бинарник (пакет migrations).
type Migrator struct {
	m  *migrate.Migrate
	db *sql.DB // не nil, только если мигратор сам открыл соединение
}

// NewMigrator создает мигратор поверх уже открытого GORM-подключения.
// Мигратор не владеет соединением.
func NewMigrator(db *DB) (*Migrator, error) {
	if db.Dialect() != config.StoragePostgres {
		return nil, ErrUnsupportedDialect
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("ошибка получения sql.DB: %w", err)
	}

	m, err := newMigrate(sqlDB)
	if err != nil {
		return nil, err
	}
	return &Migrator{m: m}, nil
}

// NewMigratorFromConfig открывает отдельное подключение для миграций.
func NewMigratorFromConfig(cfg *config.DatabaseConfig) (*Migrator, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия подключения: %w", err)
	}

	m, err := newMigrate(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Migrator{m: m, db: db}, nil
}

func newMigrate(db *sql.DB) (*migrate.Migrate, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("ошибка создания драйвера PostgreSQL: %w", err)
	}

	source, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return nil, fmt.Errorf("ошибка создания источника миграций: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания экземпляра migrate: %w", err)
	}
	return m, nil
}

// Close освобождает ресурсы мигратора.
// Собственное соединение закрывается, чужое GORM-подключение остаётся открытым.
func (m *Migrator) Close() error {
	if m.db == nil {
		return nil
	}
	sourceErr, dbErr := m.m.Close()
	if sourceErr != nil {
		return fmt.Errorf("ошибка закрытия источника миграций: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("ошибка закрытия подключения к БД: %w", dbErr)
	}
	return nil
}

// wrap приводит ErrNoChange golang-migrate к ошибке пакета.
func wrap(err error, format string, args ...any) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return ErrNoChange
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Up применяет все доступные миграции.
// Возвращает ErrNoChange, если нет миграций для применения.
func (m *Migrator) Up() error {
	if err := m.m.Up(); err != nil {
		return wrap(err, "ошибка применения миграций")
	}
	log.Println("Все миграции успешно применены")
	return nil
}

// Down откатывает последнюю примененную миграцию.
func (m *Migrator) Down() error {
	if err := m.m.Steps(-1); err != nil {
		return wrap(err, "ошибка отката миграции")
	}
	log.Println("Миграция успешно откатилась")
	return nil
}

// Steps применяет (n > 0) или откатывает (n < 0) N миграций.
func (m *Migrator) Steps(n int) error {
	if err := m.m.Steps(n); err != nil {
		return wrap(err, "ошибка применения %d миграций", n)
	}
	log.Printf("Успешно применено %d миграций\n", n)
	return nil
}

// Version возвращает текущую версию и флаг "грязного" состояния.
// Если миграции не применялись, версия будет 0 и dirty = false.
func (m *Migrator) Version() (uint, bool, error) {
	version, dirty, err := m.m.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("ошибка получения версии: %w", err)
	}
	if dirty {
		return version, true, ErrDirtyState
	}
	return version, false, nil
}

// Force устанавливает версию миграции без применения миграций.
// Используется для восстановления после "грязного" состояния.
func (m *Migrator) Force(version int) error {
	if err := m.m.Force(version); err != nil {
		return fmt.Errorf("ошибка принудительной установки версии %d: %w", version, err)
	}
	log.Printf("Версия миграции принудительно установлена на %d\n", version)
	return nil
}
