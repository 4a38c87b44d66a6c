package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/projetoszexit-cpu/FleetFlowPro/internal/models"
)

// Notifications returns a copy of the in-memory notification list.
func (s *Store) Notifications() []models.AppNotification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.AppNotification(nil), s.notifications...)
}

// AddNotification prepends a notification. Notifications are held in memory
// only and vanish on restart.
func (s *Store) AddNotification(n models.AppNotification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addNotificationLocked(n)
}

func (s *Store) addNotificationLocked(n models.AppNotification) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now()
	}
	s.notifications = append([]models.AppNotification{n}, s.notifications...)
}

// MarkNotificationRead flags a notification as read.
func (s *Store) MarkNotificationRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].IsRead = true
			return
		}
	}
}

// HasNotification reports whether a notification of the given type for the
// given vehicle was raised at or after since. The notification sweep uses
// it to stay idempotent.
func (s *Store) HasNotification(typ models.NotificationType, vehicleID string, since time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.notifications {
		if n.Type == typ && n.VehicleID == vehicleID && !n.Timestamp.Before(since) {
			return true
		}
	}
	return false
}
