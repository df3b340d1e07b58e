package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config configuração global da aplicação
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"db"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig configuração do servidor HTTP
type ServerConfig struct {
	Port    int        `mapstructure:"port"`
	BaseURL string     `mapstructure:"base_url"`
	CORS    CORSConfig `mapstructure:"cors"`
}

// CORSConfig origens permitidas para requisições cross-origin
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatabaseConfig configuração do banco SQLite
type DatabaseConfig struct {
	// Path caminho do arquivo do banco; criado na primeira execução
	Path string `mapstructure:"path"`
}

// LogConfig configuração de log
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load carrega a configuração de arquivo e variáveis de ambiente.
// Prioridade: variável de ambiente > arquivo > padrão.
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── Padrões ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("db.path", "almox.db")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// ── Arquivo de configuração ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── Variáveis de ambiente (CIEF_SERVER_PORT etc.) ──
	v.SetEnvPrefix("CIEF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("erro ao ler arquivo de configuração: %w", err)
		}
		// sem arquivo: segue com padrões e variáveis de ambiente
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("erro ao interpretar configuração: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate valida os campos críticos da configuração
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("configuração inválida: server.port deve estar entre 1 e 65535")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("configuração inválida: db.path não pode ser vazio")
	}
	return nil
}
