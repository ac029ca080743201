// Package main is the entry point for the book-catalog-service application.
//
// @title           Book Catalog API
// @version         1.0.0
// @description     API for managing a book catalog with Redis-backed response caching.
//
//	List, filter, and manage books; read-heavy endpoints serve cached responses.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/book-catalog-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Books
// @tag.description Book catalog operations
//
// @tag.name        Debug
// @tag.description Cache inspection endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/book-catalog-service/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/guttosm/book-catalog-service/config"
	"github.com/guttosm/book-catalog-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
