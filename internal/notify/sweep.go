// Package notify raises operator notifications from the current fleet
// state: low fuel, vehicles stuck in the shop and trips scheduled for
// today. Fine and occurrence notifications are raised by the store at the
// moment of insertion.
package notify

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/projetoszexit-cpu/FleetFlowPro/internal/models"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/store"
)

const (
	lowFuelThreshold = 20.0
	shopStayWarning  = 7 * 24 * time.Hour
)

// Notifier periodically sweeps the store for alert conditions.
type Notifier struct {
	store    *store.Store
	interval time.Duration
}

// New builds a Notifier sweeping at the given interval.
func New(s *store.Store, interval time.Duration) *Notifier {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Notifier{store: s, interval: interval}
}

// Run sweeps until the context is cancelled.
func (n *Notifier) Run(ctx context.Context) {
	ticker := time.NewTicker(n.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n.Sweep(time.Now())
		}
	}
}

// Sweep raises at most one notification per condition, vehicle and day.
func (n *Notifier) Sweep(now time.Time) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, v := range n.store.Vehicles() {
		if v.FuelLevel < lowFuelThreshold && v.Status != models.VehicleMaintenance {
			n.raise(models.AppNotification{
				Type:      models.NotifyLowFuel,
				Title:     "Combustível baixo",
				Message:   fmt.Sprintf("%s %s (%s) está com %.0f%% de combustível.", v.Brand, v.Model, v.Plate, v.FuelLevel),
				VehicleID: v.ID,
			}, dayStart)
		}
	}

	for _, m := range n.store.MaintenanceRecords() {
		if m.Open() && now.Sub(m.Date) > shopStayWarning {
			n.raise(models.AppNotification{
				Type:      models.NotifyMaintenanceDate,
				Title:     "Veículo parado na oficina",
				Message:   fmt.Sprintf("Manutenção aberta desde %s: %s.", m.Date.Format("02/01/2006"), m.ServiceType),
				VehicleID: m.VehicleID,
			}, dayStart)
		}
	}

	for _, st := range n.store.ScheduledTrips() {
		if !st.ScheduledDate.Before(dayStart) && st.ScheduledDate.Before(dayStart.Add(24*time.Hour)) {
			n.raise(models.AppNotification{
				Type:      models.NotifySchedule,
				Title:     "Viagem agendada para hoje",
				Message:   fmt.Sprintf("Saída de %s para %s.", st.Origin, st.Destination),
				VehicleID: st.VehicleID,
			}, dayStart)
		}
	}
}

func (n *Notifier) raise(notification models.AppNotification, since time.Time) {
	if n.store.HasNotification(notification.Type, notification.VehicleID, since) {
		return
	}
	n.store.AddNotification(notification)
	log.WithFields(log.Fields{
		"type":       notification.Type,
		"vehicle_id": notification.VehicleID,
	}).Debug("Notification raised")
}
