package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"surveyd/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "SURVEYD_LOG_LEVEL")
	viper.BindEnv("survey.source", "SURVEYD_SOURCE")
	viper.BindEnv("persistence.filePath", "SURVEYD_JOURNAL_PATH")
	viper.BindEnv("persistence.rotateInterval", "SURVEYD_ROTATE_INTERVAL")
	viper.BindEnv("cache.enabled", "SURVEYD_CACHE_ENABLED")
	viper.BindEnv("cache.size", "SURVEYD_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "SurveyIngestDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
