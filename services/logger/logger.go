package logsvc

import (
	"io"
	"log"
	"os"

	"github.com/trezcool/darasa/core"
)

// New returns the logger selected by conf.LogBackend.
func New(prefix string, conf *core.Config) core.Logger {
	if conf.LogBackend == "zap" {
		return NewZapLogger(os.Stderr, conf)
	}
	std := log.New(os.Stderr, prefix, log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	return NewRollbarLogger(std, conf)
}

// Close flushes l if its backend buffers entries.
func Close(l core.Logger) error {
	if c, ok := l.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
