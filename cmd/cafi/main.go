// cmd/cafi — composition root of the cafeteria data layer. Loads the
// configuration, opens every store (seeding the initial admin account
// when the user snapshot is empty) and reports per-store statistics.
// The desktop presentation layer builds on the stores and services
// wired here.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/JunLarU/super-journey/internal/config"
	"github.com/JunLarU/super-journey/internal/model"
	"github.com/JunLarU/super-journey/internal/service"
	"github.com/JunLarU/super-journey/internal/session"
	"github.com/JunLarU/super-journey/internal/store"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	adminInicial := &model.Usuario{
		Clave:           cfg.AdminClave,
		Username:        cfg.AdminUsername,
		Password:        cfg.AdminPassword,
		EsAdmin:         true,
		Nombre:          "Administrador",
		ApellidoPaterno: "CAFI",
	}

	usuarios := store.NewUsuarioStore(cfg.UsersPath(), adminInicial, log.Logger)
	ingredientes := store.NewIngredienteStore(cfg.IngredientesPath(), log.Logger)
	productos := store.NewProductoStore(cfg.ProductosPath(), log.Logger)
	menus := store.NewMenuStore(cfg.MenusPath(), cfg.SeccionesPath(), log.Logger)
	especiales := store.NewEspecialStore(cfg.EspecialesPath(), log.Logger)
	avisos := store.NewAvisoStore(cfg.AvisosPath(), log.Logger)

	sesion := session.NewContexto()
	auth := service.NewAuthService(usuarios, sesion)
	catalogo := service.NewCatalogoService(ingredientes, productos, sesion)
	menuSvc := service.NewMenuService(menus, productos, sesion)
	avisoSvc := service.NewAvisoService(avisos, especiales, productos, sesion)

	// The desktop presentation layer receives the four services; nothing
	// below this point touches the stores directly.
	_, _, _, _ = auth, catalogo, menuSvc, avisoSvc

	log.Info().Str("data_dir", cfg.DataDir).Msg("CAFI data layer ready")
	log.Info().Msg(usuarios.Estadisticas())
	log.Info().Msg(ingredientes.Estadisticas())
	log.Info().Msg(productos.Estadisticas())
	log.Info().Msg(menus.Estadisticas())
	log.Info().Msg(especiales.Estadisticas())
	log.Info().Msg(avisos.Estadisticas())
}
