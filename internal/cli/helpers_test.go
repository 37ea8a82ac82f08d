package cli_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/internal/cli"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/domain"
)

func TestPrintVerdict_Resolved(t *testing.T) {
	var buf bytes.Buffer
	cli.PrintVerdict(&buf, domain.ResolvedTo("dashboard", "redis"))

	out := buf.String()
	assert.Contains(t, out, "dashboard")
	assert.Contains(t, out, "redis")
}

func TestPrintVerdict_Unresolved(t *testing.T) {
	var buf bytes.Buffer
	cli.PrintVerdict(&buf, domain.Unresolved())

	assert.Contains(t, buf.String(), "unresolved")
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	cli.PrintError(&buf, errors.New("store down"))

	assert.Contains(t, buf.String(), "store down")
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", cli.LogLevel(true).String())
	assert.Equal(t, "INFO", cli.LogLevel(false).String())
}
