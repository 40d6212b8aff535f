package structures

import (
	"net/http"
	"time"
)

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type Persistence struct {
	FilePath       string        `yaml:"filePath" validate:"required|unixPath"`
	ColdStorageDir string        `yaml:"coldStorageDir"`
	MaxFileSize    int64         `yaml:"maxFileSize"`
	RotateInterval time.Duration `yaml:"rotateInterval" validate:"required|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type SurveyConfig struct {
	Source      string `yaml:"source"`
	MaxBodySize int64  `yaml:"maxBodySize"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type CorsConfig struct {
	Enabled bool     `yaml:"enabled"`
	Origins []string `yaml:"origins"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	Survey      SurveyConfig  `yaml:"survey"`
	WebServer   Server        `yaml:"webServer"`
	Persistence Persistence   `yaml:"persistence"`
	Logger      LoggerConfig  `yaml:"logger"`
	Cache       CacheConfig   `yaml:"cache"`
	Metrics     MetricsConfig `yaml:"metrics"`
	Cors        CorsConfig    `yaml:"cors"`
}

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type Route struct {
	Url     string
	Handler http.Handler
}

// RequestMeta carries the ambient request metadata the pipeline needs
// beyond the decoded payload itself.
type RequestMeta struct {
	RemoteAddr   string
	ForwardedFor string
	UserAgent    string
}
