package store

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/projetoszexit-cpu/FleetFlowPro/internal/db"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/models"
)

// ErrDriverNotFound is returned when an operation names a driver id that is
// not in the collection.
var ErrDriverNotFound = errors.New("driver not found")

// Login scans for an exact username and password match. Credentials are
// compared verbatim; the only failure signal is ok == false. On success the
// driver becomes the current-session user.
func (s *Store) Login(username, password string) (models.Driver, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.drivers {
		if d.Username == username && d.Password == password {
			user := d
			s.currentUser = &user
			log.WithField("username", username).Info("Login")
			return d, true
		}
	}
	return models.Driver{}, false
}

// Logout clears the session. Durable collections are untouched.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = nil
}

// CurrentUser returns the session driver, if any.
func (s *Store) CurrentUser() (models.Driver, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return models.Driver{}, false
	}
	return *s.currentUser, true
}

// ChangePassword overwrites the driver's password and marks the one-time
// reset as done, in both the session record and the driver collection.
func (s *Store) ChangePassword(driverID, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.driverIndex(driverID)
	if i < 0 {
		return ErrDriverNotFound
	}
	s.drivers[i].Password = newPassword
	s.drivers[i].PasswordChanged = true
	if s.currentUser != nil && s.currentUser.ID == driverID {
		user := s.drivers[i]
		s.currentUser = &user
	}
	return s.commit(db.ColDrivers)
}

// ResetDatabase erases every persisted collection, clears the session and
// in-memory notifications, and reapplies the first-run seeds. A full
// factory reset with no soft-undo.
func (s *Store) ResetDatabase() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persister.Reset(db.AllCollections...); err != nil {
		return err
	}

	s.vehicles = seedVehicles()
	s.drivers = seedDrivers()
	s.maintenance = seedMaintenance()
	s.activeTrips = nil
	s.completedTrips = nil
	s.scheduledTrips = nil
	s.checklists = nil
	s.fines = nil
	s.occurrences = nil
	s.notifications = nil
	s.currentUser = nil

	log.Warn("Database reset to factory defaults")

	return s.commit(db.ColVehicles, db.ColDrivers, db.ColMaintenance)
}
