package config

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server    Server
	Database  Database
	JWTSecret string
	Supabase  Supabase
}

type Server struct {
	Port string
}
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Supabase points at the external identity provider. Leaving URL empty
// disables the provider entirely (local development).
type Supabase struct {
	URL        string
	ProjectRef string
	Key        string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.JWTSecret = viper.GetString("JWT_SECRET")
	config.Supabase.URL = viper.GetString("SUPABASE_URL")
	config.Supabase.ProjectRef = viper.GetString("SUPABASE_PROJECT_REF")
	config.Supabase.Key = viper.GetString("SUPABASE_KEY")

	if config.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be configured")
	}
	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}

	log.Info().
		Str("serverPort", config.Server.Port).
		Str("databaseHost", config.Database.Host).
		Str("databaseName", config.Database.Name).
		Bool("supabaseEnabled", config.Supabase.URL != "").
		Msg("Config loaded")
	return &config, nil
}
