package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"SNAKES_LOG_LEVEL" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env:"SNAKES_HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"SNAKES_SOCKET_PORT" env-default:"9091"`
	Game       Game   `yaml:"game"`
}

// Game holds the dice seed and the pacing the presentation layer applies between turn steps.
type Game struct {
	DiceSeed  int64         `yaml:"dice-seed" env:"SNAKES_GAME_DICE_SEED" env-default:"0"`
	RollDelay time.Duration `yaml:"roll-delay" env:"SNAKES_GAME_ROLL_DELAY" env-default:"600ms"`
	TurnDelay time.Duration `yaml:"turn-delay" env:"SNAKES_GAME_TURN_DELAY" env-default:"700ms"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// HasFixedSeed reports whether dice rolls should be reproducible.
func (that *Game) HasFixedSeed() bool {
	return that.DiceSeed != 0
}
