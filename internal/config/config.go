package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

type Server struct {
	Host       string `toml:"host"`
	Port       int    `toml:"port"`
	Debug      bool   `toml:"debug_mode"`
	SqliteFile string `toml:"sqlite_file"`
}

type Config struct {
	Server Server
}

func New() (Config, error) {
	var serverCfg Server
	_, err := toml.DecodeFile("configs/server.toml", &serverCfg)
	if err != nil {
		return Config{}, err
	}
	if port := os.Getenv("SKILLSERVER_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return Config{}, err
		}
		serverCfg.Port = p
	}
	if file := os.Getenv("SKILLSERVER_SQLITE"); file != "" {
		serverCfg.SqliteFile = file
	}

	return Config{
		Server: serverCfg,
	}, nil
}
