package notifysvc

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
)

// Recorder keeps rendered notifications in memory, in delivery order.
type Recorder struct {
	mu   sync.Mutex
	sent []core.Notification
}

var _ core.Notifier = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{sent: make([]core.Notification, 0)}
}

func (rec *Recorder) Notify(notifications ...*core.Notification) {
	for _, n := range notifications {
		if err := n.Render(); err != nil {
			panic(errors.Wrap(err, "rendering notification"))
		}
		rec.mu.Lock()
		rec.sent = append(rec.sent, *n)
		rec.mu.Unlock()
	}
}

func (rec *Recorder) Sent() []core.Notification {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	sent := make([]core.Notification, len(rec.sent))
	copy(sent, rec.sent)
	return sent
}

// Texts returns the rendered text of every sent notification.
func (rec *Recorder) Texts() []string {
	sent := rec.Sent()
	texts := make([]string, 0, len(sent))
	for _, n := range sent {
		texts = append(texts, n.Text)
	}
	return texts
}

func (rec *Recorder) Reset() {
	rec.mu.Lock()
	rec.sent = rec.sent[:0]
	rec.mu.Unlock()
}
