package notifysvc

import (
	"fmt"
	"io"
	"os"

	"github.com/trezcool/darasa/core"
)

type consoleService struct {
	w          io.Writer
	subjPrefix string
	logger     core.Logger
}

var _ core.Notifier = (*consoleService)(nil)

// NewConsole writes every notification as one line on w (stdout if nil).
func NewConsole(w io.Writer, conf *core.Config, logger core.Logger) core.Notifier {
	if w == nil {
		w = os.Stdout
	}
	if logger == nil {
		logger = core.NopLogger()
	}
	return &consoleService{
		w:          w,
		subjPrefix: "[" + conf.AppName + "] ",
		logger:     logger,
	}
}

func (svc consoleService) Notify(notifications ...*core.Notification) {
	for _, n := range notifications {
		if err := n.Render(); err != nil {
			svc.logger.Error("rendering notification", err)
			continue
		}
		if n.HasContent() {
			_, _ = fmt.Fprintln(svc.w, svc.subjPrefix+n.Text)
		}
	}
}

type silentService struct{}

// NewSilent drops every notification.
func NewSilent() core.Notifier { return silentService{} }

func (silentService) Notify(...*core.Notification) {}

// New returns the notifier selected by conf.Notifier, writing on w.
func New(w io.Writer, conf *core.Config, logger core.Logger) core.Notifier {
	if conf.Notifier == "silent" {
		return NewSilent()
	}
	return NewConsole(w, conf, logger)
}
