package xlog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLog(t *testing.T) {
	t.Run("LogTest", func(t *testing.T) {
		logger := New(Conf{})
		logger.Info("test log info.")
		logger.Warn("test log warn.")
		logger.Debug("test log debug.")

		dir := t.TempDir()
		file := New(Conf{
			ServiceName: "test",
			Mode:        FileMode,
			Encoding:    EncodingJson,
			Level:       "info",
			Path:        dir,
			Filename:    "test.log",
		})
		file.Error("test file log error.")
		_ = file.Sync()

		if _, err := os.Stat(filepath.Join(dir, "test.log")); err != nil {
			t.Fatalf("log file not written: %v", err)
		}
	})
}
