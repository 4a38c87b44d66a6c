package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/projetoszexit-cpu/FleetFlowPro/internal/db"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/models"
)

// AddVehicle appends a vehicle to the fleet.
func (s *Store) AddVehicle(v models.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.Status == "" {
		v.Status = models.VehicleAvailable
	}
	s.vehicles = append(s.vehicles, v)
	return s.commit(db.ColVehicles)
}

// UpdateVehicle replaces the vehicle with the given id. No-op when no
// vehicle matches.
func (s *Store) UpdateVehicle(id string, v models.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.vehicleIndex(id); i >= 0 {
		v.ID = id
		s.vehicles[i] = v
		return s.commit(db.ColVehicles)
	}
	return nil
}

// DeleteVehicle removes a vehicle. Trips, fines and maintenance records
// referencing it are left in place; readers treat the dangling id as an
// unknown vehicle.
func (s *Store) DeleteVehicle(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.vehicleIndex(id); i >= 0 {
		s.vehicles = append(s.vehicles[:i], s.vehicles[i+1:]...)
	}
	return s.commit(db.ColVehicles)
}

// AddDriver appends a driver. A driver created without PasswordChanged set
// is forced through the password-change flow on first login.
func (s *Store) AddDriver(d models.Driver) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	s.drivers = append(s.drivers, d)
	return s.commit(db.ColDrivers)
}

// UpdateDriver replaces the driver with the given id. No-op when no driver
// matches.
func (s *Store) UpdateDriver(id string, d models.Driver) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.driverIndex(id); i >= 0 {
		d.ID = id
		s.drivers[i] = d
		return s.commit(db.ColDrivers)
	}
	return nil
}

// DeleteDriver removes a driver without cascading to trips, fines or
// occurrences that reference it.
func (s *Store) DeleteDriver(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.driverIndex(id); i >= 0 {
		s.drivers = append(s.drivers[:i], s.drivers[i+1:]...)
	}
	return s.commit(db.ColDrivers)
}

// AddFine prepends a fine and raises a new_fine notification.
func (s *Store) AddFine(f models.Fine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	s.fines = append([]models.Fine{f}, s.fines...)

	s.addNotificationLocked(models.AppNotification{
		Type:      models.NotifyNewFine,
		Title:     "Nova multa registrada",
		Message:   fmt.Sprintf("Multa de R$ %.2f (%d pontos): %s", f.Value, f.Points, f.Description),
		VehicleID: f.VehicleID,
	})

	return s.commit(db.ColFines)
}

// DeleteFine removes a fine.
func (s *Store) DeleteFine(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.fines {
		if s.fines[i].ID == id {
			s.fines = append(s.fines[:i], s.fines[i+1:]...)
			break
		}
	}
	return s.commit(db.ColFines)
}

// AddOccurrence prepends an incident and raises an occurrence notification.
func (s *Store) AddOccurrence(o models.Occurrence) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Timestamp.IsZero() {
		o.Timestamp = time.Now()
	}
	s.occurrences = append([]models.Occurrence{o}, s.occurrences...)

	s.addNotificationLocked(models.AppNotification{
		Type:      models.NotifyOccurrence,
		Title:     "Ocorrência registrada",
		Message:   fmt.Sprintf("%s: %s", o.Type, o.Description),
		VehicleID: o.VehicleID,
	})

	return s.commit(db.ColOccurrences)
}
