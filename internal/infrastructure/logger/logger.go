package logger

import (
	"io"
	"os"
	"strings"

	usecasecontract "github.com/mikiasgoitom/carkenya/internal/usecase/contract"
	"github.com/sirupsen/logrus"
)

// NewLogrusLogger builds the application logger. level is one of
// debug/info/warn/error; format is "json" or "text".
func NewLogrusLogger(level, format string, out io.Writer) *logrus.Logger {
	if out == nil {
		out = os.Stdout
	}
	l := logrus.New()
	l.SetOutput(out)

	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.EqualFold(format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l
}

// NewNopLogger discards everything. Used by tests.
func NewNopLogger() usecasecontract.IAppLogger {
	return NewLogrusLogger("panic", "text", io.Discard)
}

var _ usecasecontract.IAppLogger = (*logrus.Logger)(nil)
