package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config supplies the store location and the operator-level override
// that unlocks schedule editing outside Sunday. The override is read
// here once and passed down explicitly; nothing deeper in the engine
// reads configuration.
type Config interface {
	BasePath() string
	Unlocked() bool
}

// LoadConfig reads .studyroom (yaml implicit) from the working
// directory, an override directory, or $HOME, with STUDYROOM_* env
// variables on top.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.studyroom.db")
	viper.SetDefault("unlocked", false)
	viper.SetConfigName(".studyroom")
	viper.SetEnvPrefix("STUDYROOM")
	viper.AutomaticEnv()

	if override := os.Getenv("STUDYROOM_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}
	return &fileConfig{Path: path, Demo: viper.GetBool("unlocked")}, nil
}

type fileConfig struct {
	Path string `json:"path"`
	Demo bool   `json:"unlocked"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Unlocked() bool {
	return f.Demo
}

// StaticConfig is a fixed Config, used by tests and demos.
type StaticConfig struct {
	Path string
	Demo bool
}

func (s StaticConfig) BasePath() string { return s.Path }

func (s StaticConfig) Unlocked() bool { return s.Demo }
