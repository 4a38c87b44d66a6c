// Package store holds the fleet domain state: vehicles, drivers, trips,
// checklists, maintenance, fines, occurrences and notifications. All
// mutation goes through named operations on Store; collections are kept in
// memory and written through to the injected persister on every change.
package store

import (
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/projetoszexit-cpu/FleetFlowPro/internal/db"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/models"
)

// Store is the fleet domain store. Safe for concurrent use; every operation
// runs under one lock and commits its touched collections before returning.
type Store struct {
	mu        sync.Mutex
	persister db.Persister

	vehicles       []models.Vehicle
	drivers        []models.Driver
	activeTrips    []models.Trip
	completedTrips []models.Trip
	scheduledTrips []models.ScheduledTrip
	checklists     []models.Checklist
	maintenance    []models.MaintenanceRecord
	fines          []models.Fine
	occurrences    []models.Occurrence

	// session-scoped, never persisted
	notifications []models.AppNotification
	currentUser   *models.Driver
}

// New restores every collection from the persister, seeding first-run
// defaults for collections that have never been saved.
func New(p db.Persister) (*Store, error) {
	s := &Store{persister: p}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// data maps a collection name to its in-memory slice.
func (s *Store) data(name string) interface{} {
	switch name {
	case db.ColVehicles:
		return &s.vehicles
	case db.ColDrivers:
		return &s.drivers
	case db.ColActiveTrips:
		return &s.activeTrips
	case db.ColCompletedTrips:
		return &s.completedTrips
	case db.ColScheduledTrips:
		return &s.scheduledTrips
	case db.ColChecklists:
		return &s.checklists
	case db.ColMaintenance:
		return &s.maintenance
	case db.ColFines:
		return &s.fines
	case db.ColOccurrences:
		return &s.occurrences
	}
	return nil
}

func (s *Store) load() error {
	seeded := map[string]func(){
		db.ColVehicles:    func() { s.vehicles = seedVehicles() },
		db.ColDrivers:     func() { s.drivers = seedDrivers() },
		db.ColMaintenance: func() { s.maintenance = seedMaintenance() },
	}

	for _, name := range db.AllCollections {
		found, err := s.persister.Load(name, s.data(name))
		if err != nil {
			return fmt.Errorf("failed to restore %s: %w", name, err)
		}
		if !found {
			if seed, ok := seeded[name]; ok {
				seed()
				if err := s.persister.Save(name, s.data(name)); err != nil {
					return fmt.Errorf("failed to seed %s: %w", name, err)
				}
			}
		}
	}
	return nil
}

// commit writes the named collections through to the persister. Writes are
// independent, as in the source system; a failing collection is logged and
// the remaining ones are still written.
func (s *Store) commit(names ...string) error {
	var firstErr error
	for _, name := range names {
		if err := s.persister.Save(name, s.data(name)); err != nil {
			log.WithError(err).WithField("collection", name).Error("Failed to persist collection")
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// Vehicles returns a copy of the vehicle collection.
func (s *Store) Vehicles() []models.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Vehicle(nil), s.vehicles...)
}

// Drivers returns a copy of the driver collection.
func (s *Store) Drivers() []models.Driver {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Driver(nil), s.drivers...)
}

// ActiveTrips returns a copy of the active-trip collection.
func (s *Store) ActiveTrips() []models.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Trip(nil), s.activeTrips...)
}

// CompletedTrips returns a copy of the completed-trip collection.
func (s *Store) CompletedTrips() []models.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Trip(nil), s.completedTrips...)
}

// ScheduledTrips returns a copy of the scheduled-trip collection.
func (s *Store) ScheduledTrips() []models.ScheduledTrip {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ScheduledTrip(nil), s.scheduledTrips...)
}

// Checklists returns a copy of the checklist log.
func (s *Store) Checklists() []models.Checklist {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Checklist(nil), s.checklists...)
}

// MaintenanceRecords returns a copy of the maintenance log.
func (s *Store) MaintenanceRecords() []models.MaintenanceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.MaintenanceRecord(nil), s.maintenance...)
}

// Fines returns a copy of the fine log.
func (s *Store) Fines() []models.Fine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Fine(nil), s.fines...)
}

// Occurrences returns a copy of the occurrence log.
func (s *Store) Occurrences() []models.Occurrence {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Occurrence(nil), s.occurrences...)
}

// Vehicle looks up a vehicle by id. Callers must tolerate ok == false:
// deletes do not cascade, so references can dangle.
func (s *Store) Vehicle(id string) (models.Vehicle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.vehicleIndex(id); i >= 0 {
		return s.vehicles[i], true
	}
	return models.Vehicle{}, false
}

// Driver looks up a driver by id.
func (s *Store) Driver(id string) (models.Driver, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.driverIndex(id); i >= 0 {
		return s.drivers[i], true
	}
	return models.Driver{}, false
}

func (s *Store) vehicleIndex(id string) int {
	for i := range s.vehicles {
		if s.vehicles[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) driverIndex(id string) int {
	for i := range s.drivers {
		if s.drivers[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) activeTripIndex(id string) int {
	for i := range s.activeTrips {
		if s.activeTrips[i].ID == id {
			return i
		}
	}
	return -1
}
