package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/2beens/gymdash/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxSizeMB   = 50
	sentryFlushTimeout = 2 * time.Second
)

type LoggerSetupParams struct {
	LogFileName   string
	LogToStdout   bool
	LogLevel      string
	LogFormatJSON bool
	// MaxSizeMB and MaxBackups control file rotation, zero means 50MB and
	// keep all rotated files.
	MaxSizeMB  int
	MaxBackups int

	// ServiceName and Environment are added to every entry and to sentry events.
	ServiceName string
	Environment string

	SentryEnabled bool
	SentryDSN     string
}

// Setup configures the global logrus logger. Without a file name logs go to
// stdout only, otherwise to a rotated file (and stdout too if requested).
// The returned func flushes sentry and closes the log file, main defers it.
func Setup(params LoggerSetupParams) (flush func()) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetLevel(GetLevel(params.LogLevel))

	defaultFields := logrus.Fields{}
	if params.ServiceName != "" {
		defaultFields["service"] = params.ServiceName
	}
	if params.Environment != "" {
		defaultFields["env"] = params.Environment
	}
	if len(defaultFields) > 0 {
		logrus.AddHook(&defaultFieldsHook{fields: defaultFields})
	}

	var closers []io.Closer
	flush = func() {
		if params.SentryEnabled {
			sentry.Flush(sentryFlushTimeout)
		}
		for _, c := range closers {
			_ = c.Close()
		}
	}

	if params.SentryEnabled {
		err := sentry.Init(sentry.ClientOptions{
			Environment:      params.Environment,
			Dsn:              params.SentryDSN,
			TracesSampleRate: 1.0,
			ServerName:       params.ServiceName,
		})
		if err != nil {
			logrus.Errorf("sentry.Init: %s", err)
		} else {
			logrus.AddHook(NewSentryHook([]logrus.Level{
				logrus.PanicLevel,
				logrus.FatalLevel,
				logrus.ErrorLevel,
			}))
			logrus.Infoln("sentry set up successfully")
		}
	}

	if params.LogFileName == "" {
		logrus.SetOutput(os.Stdout)
		logrus.Println("writing logs only to STDOUT")
		return flush
	}

	if !strings.HasSuffix(params.LogFileName, ".log") {
		params.LogFileName += ".log"
	}
	maxSize := params.MaxSizeMB
	if maxSize <= 0 {
		maxSize = defaultMaxSizeMB
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   params.LogFileName,
		MaxSize:    maxSize, // megabytes
		MaxBackups: params.MaxBackups,
		LocalTime:  false, // false -> use UTC
		Compress:   true,
	}
	closers = append(closers, lumberJackLogger)

	if params.LogToStdout {
		logrus.Println("writing logs to file and STDOUT")
		logrus.SetOutput(pkg.NewCombinedWriter(os.Stdout, lumberJackLogger))
	} else {
		logrus.SetOutput(lumberJackLogger)
	}

	return flush
}

// GetLevel maps a config level name to a logrus level, defaulting to trace.
func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.TraceLevel
	}
	return parsed
}

// defaultFieldsHook adds fixed fields to entries that do not set them.
type defaultFieldsHook struct {
	fields logrus.Fields
}

func (h *defaultFieldsHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *defaultFieldsHook) Fire(entry *logrus.Entry) error {
	for k, v := range h.fields {
		if _, ok := entry.Data[k]; !ok {
			entry.Data[k] = v
		}
	}
	return nil
}
