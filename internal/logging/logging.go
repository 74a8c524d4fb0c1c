// Package logging builds the zap logger shared by every glossyflash component.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls logger construction
type Options struct {
	// Debug lowers the level from info to debug
	Debug bool
	// JSON switches from the console encoder to the JSON encoder
	JSON bool
	// Output defaults to stderr
	Output io.Writer
}

// New builds a logger from opts
func New(opts Options) *zap.Logger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if opts.Debug {
		level.SetLevel(zapcore.DebugLevel)
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encoder := zapcore.NewConsoleEncoder(encCfg)
	if opts.JSON {
		encCfg = zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(out), level)
	return zap.New(core).Named("glossyflash")
}

// Tee returns a logger that also writes every entry logger would emit to
// sink, using a compact console encoding. The GUI log viewer is such a sink.
func Tee(logger *zap.Logger, sink zapcore.WriteSyncer) *zap.Logger {
	base := logger.Core()
	enabled := zap.LevelEnablerFunc(base.Enabled)

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	encCfg.CallerKey = zapcore.OmitKey
	sinkCore := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), sink, enabled)

	return logger.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, sinkCore)
	}))
}
