package main

import (
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/c14220110/klinik-backend/config"
	"github.com/c14220110/klinik-backend/internal/routes"
	"github.com/c14220110/klinik-backend/pkg/storage/mariadb"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.LoadConfig()
	db := mariadb.Connect()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	routes.Init(e, db)

	log.Info().Str("port", cfg.Port).Msg("server klinik berjalan")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server berhenti")
	}
}
