package providers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"surveyd/internal/structures"
)

type TypeEnum uint8

const (
	TypeApp TypeEnum = iota
	TypeGet
	TypePost
)

type Logger interface {
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Errorf(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

// LogProvider writes application events to app.log and request-scoped events
// to access.log. In debug mode everything is mirrored to the console.
type LogProvider struct {
	app    zerolog.Logger
	access zerolog.Logger
	files  []*os.File
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", conf.Logger.Level, err)
	}

	mode := os.FileMode(conf.Logger.Mode)
	appFile, err := openLogFile(conf.Logger.Dir, "app.log", mode)
	if err != nil {
		return nil, err
	}
	accessFile, err := openLogFile(conf.Logger.Dir, "access.log", mode)
	if err != nil {
		appFile.Close()
		return nil, err
	}

	var appWriter io.Writer = appFile
	var accessWriter io.Writer = accessFile
	if conf.Debug {
		console := zerolog.ConsoleWriter{Out: os.Stdout}
		appWriter = zerolog.MultiLevelWriter(appFile, console)
		accessWriter = zerolog.MultiLevelWriter(accessFile, console)
	}

	return &LogProvider{
		app:    zerolog.New(appWriter).Level(level).With().Timestamp().Logger(),
		access: zerolog.New(accessWriter).Level(level).With().Timestamp().Logger(),
		files:  []*os.File{appFile, accessFile},
	}, nil
}

func openLogFile(dir, name string, mode os.FileMode) (*os.File, error) {
	return os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, mode)
}

func (l *LogProvider) pick(t TypeEnum) *zerolog.Logger {
	if t == TypeApp {
		return &l.app
	}
	return &l.access
}

func (l *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	l.pick(t).Debug().Msgf(format, args...)
}

func (l *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	l.pick(t).Info().Msgf(format, args...)
}

func (l *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	l.pick(t).Warn().Msgf(format, args...)
}

func (l *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	l.pick(t).Error().Msgf(format, args...)
}

func (l *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	l.pick(t).Fatal().Msgf(format, args...)
}

func (l *LogProvider) Close() {
	for _, f := range l.files {
		_ = f.Close()
	}
}

func GetLogTypeByRequestType(method string) TypeEnum {
	if method == http.MethodPost {
		return TypePost
	}
	return TypeGet
}
