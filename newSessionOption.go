package synfs

import (
	"go.uber.org/zap"

	"github.com/c2fo/synfs/options"
)

const optionNameLogger = "logger"

// WithLogger sets the logger used for operation-level debug logging.
// The default is a no-op logger.
func WithLogger(logger *zap.Logger) options.NewSessionOption[Session] {
	return &loggerOpt{logger: logger}
}

type loggerOpt struct {
	logger *zap.Logger
}

func (o *loggerOpt) Apply(s *Session) {
	s.logger = o.logger
}

func (o *loggerOpt) NewSessionOptionName() string {
	return optionNameLogger
}
