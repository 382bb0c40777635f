package logging

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// New builds a logger writing to out. format is "text" or "json".
func New(out io.Writer, level, format string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	logger := log.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	if format == "json" {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return logger, nil
}
