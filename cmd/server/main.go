package main

import (
	"log"

	"exercise-api/internal/config"
	"exercise-api/internal/server"
)

//	@title			Exercise API
//	@version		1.0
//	@description	CRUD-сервис упражнений: подходы и повторения.
//	@BasePath		/
func main() {
	log.Println("Exercise API Server Starting...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	log.Printf("Конфигурация загружена успешно")
	log.Printf("Сервер будет запущен на %s", cfg.Server.Address())
	log.Printf("Хранилище: %s", cfg.Storage.Driver)

	storage, err := server.OpenStorage(cfg)
	if err != nil {
		log.Fatalf("Ошибка инициализации хранилища: %v", err)
	}
	defer func() {
		if err := storage.Close(); err != nil {
			log.Printf("Ошибка закрытия хранилища: %v", err)
		}
	}()

	srv := server.NewServer(cfg, storage)
	if err := srv.Start(); err != nil {
		log.Printf("Сервер остановлен с ошибкой: %v", err)
	}
}
