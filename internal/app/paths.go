package app

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ConfigureViper sets up config file discovery. An explicit path wins;
// otherwise broker.{yaml,toml,json} is searched for in the working
// directory, then the user config directory, then /etc/broker.
func ConfigureViper(v *viper.Viper, configPath string) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		return
	}

	v.SetConfigName("broker")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "broker"))
	}
	v.AddConfigPath("/etc/broker")
}
