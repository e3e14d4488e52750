package logging

import (
	"github.com/bokysan/basez/internal/args"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"strings"
)

var logFile io.Closer

// SetupLogging configures the standard logrus logger from the General options. Diagnostics always
// go to stderr (or the log file), never to stdout, which carries the encoded / decoded data.
func SetupLogging() {
	SetVerbosity(args.General.Verbose)

	if args.General.LogReportCaller {
		log.AddHook(&ContextHook{})
	}

	if args.General.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
				log.FieldKeyFunc:  "@caller",
			},
		})
	} else {
		color := strings.TrimSpace(strings.ToLower(args.General.LogColor))
		log.SetFormatter(&log.TextFormatter{
			ForceColors:   color == "yes" || color == "true" || color == "1",
			DisableColors: color == "no" || color == "false" || color == "0",
			FullTimestamp: args.General.LogFullTimestamp,
		})
	}
	log.SetReportCaller(args.General.LogReportCaller)

	if err := setupOutput(args.General.LogFile); err != nil {
		log.WithError(err).Warnf("Logging to stderr instead")
	}
	log.Infof("Verbosity level: %v", VerbosityName())
}

// setupOutput redirects the log to the given file, appending to it. Empty or "-" means stderr.
func setupOutput(file *string) error {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	if file == nil || len(*file) == 0 || *file == "-" {
		log.SetOutput(os.Stderr)
		return nil
	}

	f, err := os.OpenFile(*file, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.SetOutput(os.Stderr)
		return errors.Wrapf(err, "Could not open log file %s", *file)
	}
	logFile = f
	log.SetOutput(f)
	return nil
}
