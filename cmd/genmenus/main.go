// cmd/genmenus — Genera los 14 menús vacíos (7 días × Desayuno/Comida)
// de una semana. Uso: go run cmd/genmenus/main.go -inicio 2024-06-03
package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/JunLarU/super-journey/internal/config"
	"github.com/JunLarU/super-journey/internal/model"
	"github.com/JunLarU/super-journey/internal/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	inicio := flag.String("inicio", "", "fecha inicial de la semana (yyyy-MM-dd)")
	idUsuario := flag.Int("usuario", 1, "id del usuario creador para auditoría")
	flag.Parse()

	if *inicio == "" {
		log.Fatal().Msg("se requiere -inicio yyyy-MM-dd")
	}
	t, err := time.ParseInLocation("2006-01-02", *inicio, time.Local)
	if err != nil {
		log.Fatal().Err(err).Msg("fecha inicial invalida")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	menus := store.NewMenuStore(cfg.MenusPath(), cfg.SeccionesPath(), log.Logger)
	creados := menus.GenerarMenusSemana(model.NuevaFecha(t.Year(), t.Month(), t.Day()), *idUsuario)

	log.Info().Int("menus", len(creados)).Msg("semana generada")
	log.Info().Msg(menus.Estadisticas())
}
