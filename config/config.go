package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/flowline-project/sdk/mysql"
)

// Config describes the task settings loaded from a configuration file.
type Config struct {
	Database struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
		Charset  string `mapstructure:"charset"`
	} `mapstructure:"database"`

	Execute struct {
		Query  string `mapstructure:"query"`
		Commit bool   `mapstructure:"commit"`
	} `mapstructure:"execute"`

	Fetch struct {
		Query      string `mapstructure:"query"`
		Commit     bool   `mapstructure:"commit"`
		Mode       string `mapstructure:"mode"`
		Count      int    `mapstructure:"count"`
		CursorType string `mapstructure:"cursor_type"`
	} `mapstructure:"fetch"`
}

// Load reads a yaml configuration file from path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("database.port", mysql.DefaultPort)
	v.SetDefault("database.charset", mysql.DefaultCharset)
	v.SetDefault("fetch.mode", mysql.FetchOne)
	v.SetDefault("fetch.count", mysql.DefaultFetchCount)
	v.SetDefault("fetch.cursor_type", "cursor")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ConnConfig converts the database section into connection settings.
func (c *Config) ConnConfig() mysql.ConnConfig {
	return mysql.ConnConfig{
		Host:     c.Database.Host,
		Port:     c.Database.Port,
		User:     c.Database.User,
		Password: c.Database.Password,
		Database: c.Database.Name,
		Charset:  c.Database.Charset,
	}
}

// ExecuteConfig converts the loaded settings into ExecuteTask configuration.
func (c *Config) ExecuteConfig() mysql.ExecuteConfig {
	return mysql.ExecuteConfig{
		Database: c.ConnConfig(),
		Query:    c.Execute.Query,
		Commit:   c.Execute.Commit,
	}
}

// FetchConfig converts the loaded settings into FetchTask configuration.
func (c *Config) FetchConfig() mysql.FetchConfig {
	return mysql.FetchConfig{
		Database:   c.ConnConfig(),
		Query:      c.Fetch.Query,
		Commit:     c.Fetch.Commit,
		Fetch:      c.Fetch.Mode,
		FetchCount: c.Fetch.Count,
		CursorType: c.Fetch.CursorType,
	}
}
