// cmd/limpiar — Purga avisos y productos especiales cuya vigencia
// terminó hace más de 30 días. Se invoca de forma explícita; el
// sistema nunca lo programa solo.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/JunLarU/super-journey/internal/config"
	"github.com/JunLarU/super-journey/internal/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	avisos := store.NewAvisoStore(cfg.AvisosPath(), log.Logger)
	especiales := store.NewEspecialStore(cfg.EspecialesPath(), log.Logger)

	log.Info().
		Int("avisos", avisos.LimpiarExpirados()).
		Int("especiales", especiales.LimpiarExpirados()).
		Msg("limpieza terminada")
}
