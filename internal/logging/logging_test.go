package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestGetLevel(t *testing.T) {
	cases := map[string]logrus.Level{
		"trace":   logrus.TraceLevel,
		"DEBUG":   logrus.DebugLevel,
		" info ":  logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
		"warning": logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"fatal":   logrus.FatalLevel,
		"panic":   logrus.PanicLevel,
		"":        logrus.InfoLevel,
		"chatty":  logrus.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, GetLevel(in), "level %q", in)
	}
}

func TestSetup_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "fittrack")
	logger := Setup(Params{FileName: path, Level: "debug", JSON: true})
	logger.WithField("use_case", "log-workout").Debug("service_use_case")

	data, err := os.ReadFile(path + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"use_case":"log-workout"`)
}

func TestSetup_DiscardsWithoutSinks(t *testing.T) {
	logger := Setup(Params{Level: "info"})
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	logger.Info("nobody hears this")
}

func TestCombinedWriter_Write(t *testing.T) {
	sb1 := &strings.Builder{}
	sb1.WriteString("already-here")
	sb2 := &strings.Builder{}

	cw := NewCombinedWriter(sb1, sb2)
	require.Len(t, cw.Writers, 2)

	n, err := cw.Write([]byte("a message"))
	require.NoError(t, err)
	assert.Equal(t, len("a message"), n)

	assert.Equal(t, "already-herea message", sb1.String())
	assert.Equal(t, "a message", sb2.String())
}

type faultyWriter struct{ err error }

func (fw *faultyWriter) Write([]byte) (int, error) { return 0, fw.err }

func TestCombinedWriter_Write_WithError(t *testing.T) {
	sb := &strings.Builder{}
	cw := NewCombinedWriter(&faultyWriter{errors.New("disk full")}, sb)

	n, err := cw.Write([]byte("msg"))
	assert.EqualError(t, err, "disk full")
	assert.Equal(t, 3, n)
	assert.Equal(t, "msg", sb.String())
}

func TestCombinedWriter_AllFail(t *testing.T) {
	cw := NewCombinedWriter(&faultyWriter{errors.New("a")}, &faultyWriter{errors.New("b")})
	n, err := cw.Write([]byte("msg"))
	assert.Zero(t, n)
	assert.Len(t, multierr.Errors(err), 2)
}
