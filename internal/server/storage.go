package server

import (
	"fmt"
	"log"

	"exercise-api/internal/config"
	"exercise-api/internal/database"
	repo "exercise-api/internal/repository/interfaces"
	"exercise-api/internal/repository/memory"
	"exercise-api/internal/repository/sqldb"
)

// Storage объединяет репозиторий упражнений и подключение к БД, если оно есть.
type Storage struct {
	Exercises repo.ExerciseRepository
	DB        *database.DB // nil для хранилища в памяти
}

// OpenStorage создаёт хранилище по STORAGE_DRIVER.
// Для postgres и sqlite при включённом AutoMigrate создаётся схема.
func OpenStorage(cfg *config.Config) (*Storage, error) {
	var (
		db  *database.DB
		err error
	)

	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Println("Упражнения хранятся в памяти процесса")
		return &Storage{Exercises: memory.NewExerciseRepository()}, nil
	case config.StoragePostgres:
		db, err = database.NewConnection(&cfg.Database, cfg.AppEnv)
	case config.StorageSQLite:
		db, err = database.NewSQLiteConnection(cfg.Storage.SQLitePath, cfg.AppEnv)
	default:
		return nil, fmt.Errorf("неизвестный драйвер хранилища: %q", cfg.Storage.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Storage.AutoMigrate {
		if err := db.EnsureSchema(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("ошибка подготовки схемы: %w", err)
		}
	}

	return &Storage{
		Exercises: sqldb.NewExerciseRepository(db.DB),
		DB:        db,
	}, nil
}

// Close закрывает подключение к БД, если оно открыто.
func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
