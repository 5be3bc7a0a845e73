package log_test

import (
	"testing"

	"github.com/charmingruby/unfold/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	for _, level := range log.Levels {
		t.Run(level, func(t *testing.T) {
			logger, err := log.NewLogger(level)
			require.NoError(t, err)
			want, err := zapcore.ParseLevel(level)
			require.NoError(t, err)
			assert.Equal(t, want, logger.Level())
		})
	}

	t.Run("unknown verbosity", func(t *testing.T) {
		_, err := log.NewLogger("loud")
		assert.ErrorContains(t, err, `cannot parse verbosity "loud"`)
	})
}
