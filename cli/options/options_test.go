package options

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/macladson/milhouse/pkg/config"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
	"go.uber.org/zap/zapcore"
)

func newContext(t *testing.T, args ...string) *cli.Context {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range Common {
		f.Apply(set)
	}
	require.NoError(t, set.Parse(args))
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestGetConfigFromContext(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		cfg, err := GetConfigFromContext(newContext(t))
		require.NoError(t, err)
		require.Equal(t, config.Default(), cfg)
	})
	t.Run("type override", func(t *testing.T) {
		cfg, err := GetConfigFromContext(newContext(t, "--type", "u8"))
		require.NoError(t, err)
		require.Equal(t, "u8", cfg.ApplicationConfiguration.ValueType)
	})
	t.Run("file", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "cfg.yml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("ApplicationConfiguration:\n  ValueType: bool\n"), 0644))
		cfg, err := GetConfigFromContext(newContext(t, "--config-file", cfgPath))
		require.NoError(t, err)
		require.Equal(t, "bool", cfg.ApplicationConfiguration.ValueType)

		cfg, err = GetConfigFromContext(newContext(t, "--config-file", cfgPath, "--type", "u32"))
		require.NoError(t, err)
		require.Equal(t, "u32", cfg.ApplicationConfiguration.ValueType)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := GetConfigFromContext(newContext(t, "--config-file", filepath.Join(t.TempDir(), "none.yml")))
		require.Error(t, err)
	})
}

func TestHandleLoggingParams(t *testing.T) {
	d := t.TempDir()
	testLog := filepath.Join(d, "file.log")

	t.Run("logdir is a file", func(t *testing.T) {
		logfile := filepath.Join(d, "logdir")
		require.NoError(t, os.WriteFile(logfile, []byte{1, 2, 3}, 0644))
		cfg := config.ApplicationConfiguration{
			LogPath: filepath.Join(logfile, "file.log"),
		}
		_, _, err := HandleLoggingParams(false, cfg)
		require.Error(t, err)
	})

	t.Run("invalid level", func(t *testing.T) {
		cfg := config.ApplicationConfiguration{
			LogPath:  testLog,
			LogLevel: "qwerty",
		}
		_, _, err := HandleLoggingParams(false, cfg)
		require.Error(t, err)
	})

	t.Run("default", func(t *testing.T) {
		cfg := config.ApplicationConfiguration{
			LogPath: testLog,
		}
		logger, lvl, err := HandleLoggingParams(false, cfg)
		require.NoError(t, err)
		t.Cleanup(func() {
			_ = logger.Sync()
		})
		require.Equal(t, zapcore.InfoLevel, lvl.Level())
		require.True(t, logger.Core().Enabled(zapcore.InfoLevel))
		require.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("warn", func(t *testing.T) {
		cfg := config.ApplicationConfiguration{
			LogPath:  testLog,
			LogLevel: "warn",
		}
		logger, lvl, err := HandleLoggingParams(false, cfg)
		require.NoError(t, err)
		t.Cleanup(func() {
			_ = logger.Sync()
		})
		require.Equal(t, zapcore.WarnLevel, lvl.Level())
		require.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("debug", func(t *testing.T) {
		cfg := config.ApplicationConfiguration{
			LogPath: testLog,
		}
		logger, lvl, err := HandleLoggingParams(true, cfg)
		require.NoError(t, err)
		t.Cleanup(func() {
			_ = logger.Sync()
		})
		require.Equal(t, zapcore.DebugLevel, lvl.Level())
		require.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})
}
