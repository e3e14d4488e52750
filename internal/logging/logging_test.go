package logging

import (
	"bytes"
	"github.com/bokysan/basez/internal/args"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func Test_SetVerbosity(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	SetVerbosity(nil)
	require.Equal(t, log.ErrorLevel, log.GetLevel())
	require.Equal(t, "ERROR", VerbosityName())

	SetVerbosity([]bool{true})
	require.Equal(t, "WARN", VerbosityName())

	SetVerbosity([]bool{true, true, true})
	require.Equal(t, "DEBUG", VerbosityName())

	SetVerbosity(make([]bool, 10))
	require.Equal(t, log.TraceLevel, log.GetLevel())
	require.Equal(t, "TRACE", VerbosityName())
}

func Test_ContextHook(t *testing.T) {
	logger := log.New()
	buf := &bytes.Buffer{}
	logger.SetOutput(buf)
	logger.SetFormatter(&log.JSONFormatter{})
	logger.AddHook(&ContextHook{})

	logger.Info("hello")

	require.Contains(t, buf.String(), `"file":"logging_test.go"`)
	require.Contains(t, buf.String(), `"func":"logging.Test_ContextHook"`)
}

func Test_SetupLoggingToFile(t *testing.T) {
	saved := args.General
	defer func() {
		args.General = saved
		_ = setupOutput(nil)
		log.SetLevel(log.InfoLevel)
		log.SetFormatter(&log.TextFormatter{})
	}()

	file := filepath.Join(t.TempDir(), "basez.log")
	args.General.LogFile = &file
	args.General.LogFormat = "json"
	args.General.Verbose = []bool{true, true}

	SetupLogging()
	log.Warnf("written to file")
	require.NoError(t, setupOutput(nil))

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Contains(t, string(content), `"message":"Verbosity level: INFO"`)
	require.Contains(t, string(content), `"message":"written to file"`)
}
