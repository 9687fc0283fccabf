package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/learnstructures/singly/log"
	"github.com/learnstructures/singly/scenario"
	"github.com/learnstructures/singly/trace"
)

const envLogLevel = "SINGLY_LOG_LEVEL"

type config struct {
	logLevel   string
	logDetails string
	zap        bool
	color      bool
	parallel   int
	failFast   bool

	logger log.Logger
	sync   func()
}

func (c *config) bindFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&c.logLevel, "log-level", "info",
		"minimal level of log records: trace, debug, info, warn, error, fatal or quiet (env "+envLogLevel+")")
	flags.StringVar(&c.logDetails, "log-details", `singly\..*`, "regexp over event names to log")
	flags.BoolVar(&c.zap, "zap", false, "write JSON log records with zap")
	flags.BoolVar(&c.color, "color", false, "colorize text log records")
	flags.IntVar(&c.parallel, "parallel", runtime.GOMAXPROCS(0), "scenarios replayed at once")
	flags.BoolVar(&c.failFast, "fail-fast", false, "stop at the first mismatch")
}

func (c *config) setup(cmd *cobra.Command, stderr io.Writer) error {
	if !cmd.Flags().Changed("log-level") {
		if lvl, has := os.LookupEnv(envLogLevel); has {
			c.logLevel = lvl
		}
	}
	lvl := log.FromString(c.logLevel)

	c.sync = func() {}
	if !c.zap {
		opts := []log.Option{log.WithMinLevel(lvl)}
		if c.color {
			opts = append(opts, log.WithColoring())
		}
		c.logger = log.Default(stderr, opts...)

		return nil
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zapLevel(lvl))
	z, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.logger = log.Zap(z)
	c.sync = func() {
		_ = z.Sync()
	}

	return nil
}

func (c *config) close() {
	if c.sync != nil {
		c.sync()
	}
}

func zapLevel(lvl log.Level) zapcore.Level {
	switch lvl {
	case log.TRACE, log.DEBUG:
		return zapcore.DebugLevel
	case log.INFO:
		return zapcore.InfoLevel
	case log.WARN:
		return zapcore.WarnLevel
	case log.ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.FatalLevel
	}
}

func (c *config) scenarioOptions(extra ...scenario.Option) []scenario.Option {
	details := trace.MatchDetails(c.logDetails)
	opts := []scenario.Option{
		scenario.WithTrace(log.Scenario(c.logger, details)),
		scenario.WithListTrace(log.List(c.logger, details)),
	}
	if c.failFast {
		opts = append(opts, scenario.WithFailFast())
	}

	return append(opts, extra...)
}
