package notifysvc

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/trezcool/darasa/core"
)

type meteredService struct {
	next core.Notifier
	sent *prometheus.CounterVec
}

// NewMetered counts notifications by kind on reg before handing them to next.
func NewMetered(next core.Notifier, reg prometheus.Registerer) (core.Notifier, error) {
	sent := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "darasa_notifications_total",
			Help: "Total number of notifications sent, by kind",
		},
		[]string{"kind"},
	)
	if err := reg.Register(sent); err != nil {
		return nil, err
	}
	return &meteredService{next: next, sent: sent}, nil
}

func (svc *meteredService) Notify(notifications ...*core.Notification) {
	for _, n := range notifications {
		svc.sent.WithLabelValues(string(n.Kind)).Inc()
	}
	svc.next.Notify(notifications...)
}
