package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Afroza0808/1638-GraphProject/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestNew(t *testing.T) {
	t.Run("writes one line per record", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log, err := logging.New(buf, "info")
		require.NoError(t, err)

		log.Info("graph loaded", slog.Int("locations", 42), slog.String("file", "roads.csv"))
		log.Debug("hidden")

		out := buf.String()
		assert.Equal(t, 1, strings.Count(out, "\n"))
		assert.Contains(t, out, "INFO graph loaded locations=42 file=roads.csv")
		assert.NotContains(t, out, "hidden")
	})

	t.Run("debug level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log, err := logging.New(buf, "DEBUG")
		require.NoError(t, err)
		log.With(slog.String("component", "solver")).Debug("route solved")
		assert.Contains(t, buf.String(), "DEBUG route solved component=solver")
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := logging.New(&bytes.Buffer{}, "verbose")
		assert.Error(t, err)
	})
}
