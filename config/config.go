package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	hConfig "github.com/michaelyusak/go-helper/config"
	hEntity "github.com/michaelyusak/go-helper/entity"
)

type BishinoConfig struct {
	BaseUrl     string           `json:"base_url"`
	ApiKey      string           `json:"api_key" env:"BISHINO_API_KEY"`
	SecretKey   string           `json:"secret_key" env:"BISHINO_SECRET_KEY"`
	RecvWindow  int64            `json:"recv_window"`
	AdjustClock bool             `json:"adjust_clock"`
	Timeout     hEntity.Duration `json:"timeout"`
}

type ServerConfig struct {
	Port string `json:"port"`
}

type AppConfig struct {
	Identity string        `json:"identity"`
	Exchange BishinoConfig `json:"exchange"`
	Server   ServerConfig  `json:"server"`
}

// Init loads the JSON config file, then overlays credentials from the
// environment so secrets never have to live on disk.
func Init(conf *AppConfig) error {
	c, err := hConfig.InitFromJson[AppConfig]("./config/config.json")
	if err != nil {
		return fmt.Errorf("[config][Init][hConfig.InitFromJson] Error: %w", err)
	}

	if err := env.Parse(&c.Exchange); err != nil {
		return fmt.Errorf("[config][Init][env.Parse] Error: %w", err)
	}

	*conf = c

	return nil
}
