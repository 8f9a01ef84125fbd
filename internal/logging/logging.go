// Package logging builds the process-wide zap logger.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the level and encoding of the logger.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // console or json
	Output io.Writer
}

// New builds a logger writing to opts.Output (stderr when nil). Command
// output goes to stdout, so logs never mix with it.
func New(opts Options) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	var encCfg zapcore.EncoderConfig
	var encoder zapcore.Encoder
	switch opts.Format {
	case "json":
		encCfg = zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encCfg)
	case "", "console":
		encCfg = zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, fmt.Errorf("invalid log format %q (want console or json)", opts.Format)
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(out), zap.NewAtomicLevelAt(level))
	return zap.New(core), nil
}
