package config

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment
// variables, with an optional .env file for local development.
type Config struct {
	Env     string `mapstructure:"APP_ENV"` // development | production
	DataDir string `mapstructure:"DATA_DIR"`

	// Seed account created when the user snapshot is empty
	AdminClave    string `mapstructure:"ADMIN_CLAVE"`
	AdminUsername string `mapstructure:"ADMIN_USERNAME"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("ADMIN_CLAVE", "U001")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "admin")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Paths to the per-entity snapshot files inside DataDir.

func (c *Config) UsersPath() string        { return filepath.Join(c.DataDir, "users.json") }
func (c *Config) IngredientesPath() string { return filepath.Join(c.DataDir, "ingredientes.json") }
func (c *Config) ProductosPath() string    { return filepath.Join(c.DataDir, "productos.json") }
func (c *Config) MenusPath() string        { return filepath.Join(c.DataDir, "menus.json") }
func (c *Config) SeccionesPath() string    { return filepath.Join(c.DataDir, "secciones_menu.json") }
func (c *Config) EspecialesPath() string   { return filepath.Join(c.DataDir, "productos_especiales.json") }
func (c *Config) AvisosPath() string       { return filepath.Join(c.DataDir, "avisos.json") }
