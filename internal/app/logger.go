package app

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger создаёт логгер процесса; service и env попадают в каждую запись
func NewLogger(env, service string) *zap.Logger {
	logger, err := loggerConfig(env, service).Build()
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}

	return logger
}

func loggerConfig(env, service string) zap.Config {
	var config zap.Config

	if env == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	config.OutputPaths = []string{"stdout"}
	config.InitialFields = map[string]interface{}{
		"service": service,
		"env":     env,
	}

	return config
}
