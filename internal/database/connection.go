package database

import (
	_ "embed"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"exercise-api/internal/config"
)

// Константы для значений по умолчанию пула соединений
const (
	defaultMaxOpenConns    = 25
	defaultMaxIdleConns    = 5
	defaultConnMaxLifetime = 5 * time.Minute
	defaultConnMaxIdleTime = 10 * time.Minute
)

//go:embed sqlite_schema.sql
var sqliteSchema string

// DB представляет подключение к базе данных
type DB struct {
	*gorm.DB
	dialect string
}

// NewConnection создает подключение к PostgreSQL.
// Принимает конфигурацию базы данных и окружение приложения для настройки логирования.
//
// Пример использования:
//
//	db, err := database.NewConnection(&cfg.Database, cfg.AppEnv)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
func NewConnection(cfg *config.DatabaseConfig, appEnv string) (*DB, error) {
	if cfg == nil {
		return nil, fmt.Errorf("конфигурация базы данных не может быть nil")
	}

	log.Println("Инициализация подключения к PostgreSQL...")

	return open(postgres.Open(cfg.DSN()), config.StoragePostgres, poolSettings{
		maxOpenConns:    cfg.MaxOpenConns,
		maxIdleConns:    cfg.MaxIdleConns,
		connMaxLifetime: cfg.ConnMaxLifetime,
		connMaxIdleTime: cfg.ConnMaxIdleTime,
	}, appEnv)
}

// NewSQLiteConnection открывает файл SQLite (или ":memory:").
// SQLite допускает одного писателя, поэтому пул ограничен одним соединением,
// которое не пересоздаётся по времени: база ":memory:" живёт, пока живёт соединение.
func NewSQLiteConnection(path, appEnv string) (*DB, error) {
	if path == "" {
		return nil, fmt.Errorf("путь к файлу SQLite не может быть пустым")
	}

	log.Printf("Инициализация подключения к SQLite (%s)...", path)

	return open(sqlite.Open(path), config.StorageSQLite, poolSettings{
		maxOpenConns:    1,
		maxIdleConns:    1,
		connMaxLifetime: -1,
		connMaxIdleTime: -1,
	}, appEnv)
}

type poolSettings struct {
	maxOpenConns    int
	maxIdleConns    int
	connMaxLifetime time.Duration
	connMaxIdleTime time.Duration
}

func open(dialector gorm.Dialector, dialect string, pool poolSettings, appEnv string) (*DB, error) {
	// Настройка уровня логирования GORM в зависимости от окружения
	gormLogger := logger.Default
	if strings.ToLower(appEnv) == "development" {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к базе данных: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("ошибка получения sql.DB: %w", err)
	}

	// Используем значения из конфига, если они заданы, иначе значения по умолчанию
	if pool.maxOpenConns == 0 {
		pool.maxOpenConns = defaultMaxOpenConns
	}
	if pool.maxIdleConns == 0 {
		pool.maxIdleConns = defaultMaxIdleConns
	}
	if pool.connMaxLifetime == 0 {
		pool.connMaxLifetime = defaultConnMaxLifetime
	}
	if pool.connMaxIdleTime == 0 {
		pool.connMaxIdleTime = defaultConnMaxIdleTime
	}

	sqlDB.SetMaxOpenConns(pool.maxOpenConns)
	sqlDB.SetMaxIdleConns(pool.maxIdleConns)
	sqlDB.SetConnMaxLifetime(pool.connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(pool.connMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ошибка проверки подключения к базе данных: %w", err)
	}

	log.Println("Подключение к базе данных установлено успешно")

	return &DB{DB: db, dialect: dialect}, nil
}

// Dialect возвращает имя драйвера: postgres или sqlite.
func (db *DB) Dialect() string {
	return db.dialect
}

// EnsureSchema создаёт таблицу exercises, если её ещё нет.
// Для PostgreSQL применяет миграции golang-migrate, для SQLite встроенную схему.
func (db *DB) EnsureSchema() error {
	switch db.dialect {
	case config.StorageSQLite:
		if err := db.Exec(sqliteSchema).Error; err != nil {
			return fmt.Errorf("ошибка создания схемы SQLite: %w", err)
		}
		return nil
	case config.StoragePostgres:
		migrator, err := NewMigrator(db)
		if err != nil {
			return err
		}
		// Мигратор создан через WithInstance и не владеет соединением, поэтому не закрываем его.
		if err := migrator.Up(); err != nil && err != ErrNoChange {
			return err
		}
		return nil
	default:
		return fmt.Errorf("неизвестный драйвер базы данных: %s", db.dialect)
	}
}

// Close закрывает подключение к базе данных.
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("ошибка получения sql.DB для закрытия: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("ошибка закрытия подключения к базе данных: %w", err)
	}

	log.Println("Подключение к базе данных закрыто")
	return nil
}

// Ping проверяет доступность базы данных.
// Используется для health checks и проверки работоспособности подключения.
func (db *DB) Ping() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("ошибка получения sql.DB: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("ошибка ping базы данных: %w", err)
	}

	return nil
}
