package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"exercise-api/internal/config"
	"exercise-api/internal/database"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd собирает CLI миграций PostgreSQL. Без подкоманды применяет все миграции.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "migrate",
		Short: "Управление миграциями базы данных PostgreSQL",
		Long: `Управление схемой таблицы exercises в PostgreSQL.

Параметры подключения берутся из переменных окружения DB_* (или файла .env).

Примеры:
  migrate              # Применить все миграции
  migrate up           # Применить все миграции
  migrate down         # Откатить последнюю миграцию
  migrate steps 2      # Применить 2 миграции
  migrate steps -- -1  # Откатить 1 миграцию
  migrate version      # Показать текущую версию
  migrate force 1      # Принудительно установить версию`,
		SilenceUsage: true,
		RunE: withMigrator(func(m *database.Migrator, _ []string) error {
			return m.Up()
		}),
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Применить все доступные миграции",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(m *database.Migrator, _ []string) error {
				return m.Up()
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Откатить последнюю миграцию",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(m *database.Migrator, _ []string) error {
				return m.Down()
			}),
		},
		&cobra.Command{
			Use:   "steps <n>",
			Short: "Применить (n > 0) или откатить (n < 0) N миграций",
			Args:  cobra.ExactArgs(1),
			RunE: withMigrator(func(m *database.Migrator, args []string) error {
				n, err := strconv.Atoi(args[0])
				if err != nil || n == 0 {
					return fmt.Errorf("некорректное количество шагов: %q", args[0])
				}
				return m.Steps(n)
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Показать текущую версию миграции",
			Args:  cobra.NoArgs,
			RunE: withMigrator(func(m *database.Migrator, _ []string) error {
				version, dirty, err := m.Version()
				if err != nil && !errors.Is(err, database.ErrDirtyState) {
					return err
				}
				fmt.Printf("Текущая версия: %d (dirty: %v)\n", version, dirty)
				if dirty {
					log.Println("⚠️  База данных в грязном состоянии, используйте force")
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "force <version>",
			Short: "Принудительно установить версию без применения миграций",
			Args:  cobra.ExactArgs(1),
			RunE: withMigrator(func(m *database.Migrator, args []string) error {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("некорректная версия: %q", args[0])
				}
				return m.Force(v)
			}),
		},
	)

	return root
}

// withMigrator загружает конфигурацию, открывает мигратор и закрывает его после действия.
// ErrNoChange не считается ошибкой.
func withMigrator(action func(m *database.Migrator, args []string) error) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
		}

		migrator, err := database.NewMigratorFromConfig(&cfg.Database)
		if err != nil {
			return fmt.Errorf("ошибка создания мигратора: %w", err)
		}
		defer func() {
			if err := migrator.Close(); err != nil {
				log.Printf("Ошибка закрытия мигратора: %v", err)
			}
		}()

		if err := action(migrator, args); err != nil {
			if errors.Is(err, database.ErrNoChange) {
				log.Println("Нет изменений для применения")
				return nil
			}
			log.Printf("Ошибка миграции: %v", err)
			return err
		}
		return nil
	}
}
