package store

import (
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/projetoszexit-cpu/FleetFlowPro/internal/db"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/models"
)

// Expenses carries the costs reported when a trip ends.
type Expenses struct {
	Fuel  float64 `json:"fuel"`
	Other float64 `json:"other"`
	Notes string  `json:"notes"`
}

// TripUpdate is a partial in-flight edit of an active trip. Nil fields are
// left unchanged.
type TripUpdate struct {
	Origin       *string   `json:"origin,omitempty"`
	Destination  *string   `json:"destination,omitempty"`
	Waypoints    *[]string `json:"waypoints,omitempty"`
	City         *string   `json:"city,omitempty"`
	State        *string   `json:"state,omitempty"`
	ZipCode      *string   `json:"zip_code,omitempty"`
	Observations *string   `json:"observations,omitempty"`
}

// StartTrip inserts the trip into the active collection, logs the checklist
// and applies the vehicle/driver side effects: the vehicle becomes IN_USE
// with its odometer and fuel level taken from the checklist, and the driver
// is marked as holding the vehicle. The caller is responsible for starting
// only trips whose vehicle is AVAILABLE.
func (s *Store) StartTrip(trip models.Trip, checklist models.Checklist) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startTripLocked(trip, checklist, nil)
}

// StartScheduledTrip promotes a schedule entry: it starts the trip and
// deletes the entry in the same commit.
func (s *Store) StartScheduledTrip(scheduleID string, trip models.Trip, checklist models.Checklist) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startTripLocked(trip, checklist, &scheduleID)
}

func (s *Store) startTripLocked(trip models.Trip, checklist models.Checklist, scheduleID *string) error {
	if trip.ID == "" {
		trip.ID = uuid.NewString()
	}
	if checklist.ID == "" {
		checklist.ID = uuid.NewString()
	}

	s.activeTrips = append(s.activeTrips, trip)
	s.checklists = append(s.checklists, checklist)

	touched := []string{db.ColActiveTrips, db.ColChecklists}

	if i := s.vehicleIndex(trip.VehicleID); i >= 0 {
		cl := checklist
		s.vehicles[i].Status = models.VehicleInUse
		s.vehicles[i].CurrentKm = checklist.Km
		s.vehicles[i].FuelLevel = checklist.FuelLevel
		s.vehicles[i].LastChecklist = &cl
	}
	touched = append(touched, db.ColVehicles)

	if i := s.driverIndex(trip.DriverID); i >= 0 {
		s.drivers[i].ActiveVehicleID = trip.VehicleID
	}
	touched = append(touched, db.ColDrivers)

	if scheduleID != nil {
		s.deleteScheduledLocked(*scheduleID)
		touched = append(touched, db.ColScheduledTrips)
	}

	log.WithFields(log.Fields{
		"trip_id":    trip.ID,
		"vehicle_id": trip.VehicleID,
		"driver_id":  trip.DriverID,
	}).Info("Trip started")

	return s.commit(touched...)
}

// UpdateTrip merges the given fields into the matching active trip. Unknown
// trip ids are a silent no-op, as in the source system.
func (s *Store) UpdateTrip(tripID string, updates TripUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.activeTripIndex(tripID)
	if i < 0 {
		log.WithField("trip_id", tripID).Debug("UpdateTrip: no active trip with id")
		return nil
	}

	t := &s.activeTrips[i]
	if updates.Origin != nil {
		t.Origin = *updates.Origin
	}
	if updates.Destination != nil {
		t.Destination = *updates.Destination
	}
	if updates.Waypoints != nil {
		t.Waypoints = *updates.Waypoints
	}
	if updates.City != nil {
		t.City = *updates.City
	}
	if updates.State != nil {
		t.State = *updates.State
	}
	if updates.ZipCode != nil {
		t.ZipCode = *updates.ZipCode
	}
	if updates.Observations != nil {
		t.Observations = *updates.Observations
	}

	return s.commit(db.ColActiveTrips)
}

// EndTrip completes an active trip: the trip moves to the completed
// collection with end time, distance (end km minus start km, not validated
// non-negative) and expenses; the vehicle returns to AVAILABLE at the
// reported odometer and the driver releases it. Unknown trip ids are a
// silent no-op.
func (s *Store) EndTrip(tripID string, currentKm float64, endTime time.Time, expenses *Expenses) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.activeTripIndex(tripID)
	if i < 0 {
		log.WithField("trip_id", tripID).Debug("EndTrip: no active trip with id")
		return nil
	}

	trip := s.activeTrips[i]
	trip.EndTime = &endTime
	trip.Distance = currentKm - trip.StartKm
	if expenses != nil {
		trip.FuelExpense = expenses.Fuel
		trip.OtherExpense = expenses.Other
		trip.ExpenseNotes = expenses.Notes
	}

	s.activeTrips = append(s.activeTrips[:i], s.activeTrips[i+1:]...)
	s.completedTrips = append([]models.Trip{trip}, s.completedTrips...)

	if vi := s.vehicleIndex(trip.VehicleID); vi >= 0 {
		s.vehicles[vi].Status = models.VehicleAvailable
		s.vehicles[vi].CurrentKm = currentKm
	}
	if di := s.driverIndex(trip.DriverID); di >= 0 {
		s.drivers[di].ActiveVehicleID = ""
	}

	log.WithFields(log.Fields{
		"trip_id":  tripID,
		"distance": trip.Distance,
	}).Info("Trip completed")

	return s.commit(db.ColActiveTrips, db.ColCompletedTrips, db.ColVehicles, db.ColDrivers)
}

// CancelTrip removes an active trip without recording a completed trip. The
// vehicle returns to AVAILABLE with its odometer untouched. No record of
// the cancellation is retained. Unknown trip ids are a silent no-op.
func (s *Store) CancelTrip(tripID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.activeTripIndex(tripID)
	if i < 0 {
		log.WithField("trip_id", tripID).Debug("CancelTrip: no active trip with id")
		return nil
	}

	trip := s.activeTrips[i]
	s.activeTrips = append(s.activeTrips[:i], s.activeTrips[i+1:]...)

	if vi := s.vehicleIndex(trip.VehicleID); vi >= 0 {
		s.vehicles[vi].Status = models.VehicleAvailable
	}
	if di := s.driverIndex(trip.DriverID); di >= 0 {
		s.drivers[di].ActiveVehicleID = ""
	}

	log.WithField("trip_id", tripID).Info("Trip cancelled")

	return s.commit(db.ColActiveTrips, db.ColVehicles, db.ColDrivers)
}

// AddScheduledTrip prepends a schedule entry.
func (s *Store) AddScheduledTrip(trip models.ScheduledTrip) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if trip.ID == "" {
		trip.ID = uuid.NewString()
	}
	s.scheduledTrips = append([]models.ScheduledTrip{trip}, s.scheduledTrips...)
	return s.commit(db.ColScheduledTrips)
}

// UpdateScheduledTrip replaces the schedule entry with the given id. No-op
// when no entry matches.
func (s *Store) UpdateScheduledTrip(id string, trip models.ScheduledTrip) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.scheduledTrips {
		if s.scheduledTrips[i].ID == id {
			trip.ID = id
			s.scheduledTrips[i] = trip
			return s.commit(db.ColScheduledTrips)
		}
	}
	return nil
}

// DeleteScheduledTrip removes the schedule entry with the given id.
func (s *Store) DeleteScheduledTrip(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deleteScheduledLocked(id)
	return s.commit(db.ColScheduledTrips)
}

func (s *Store) deleteScheduledLocked(id string) {
	for i := range s.scheduledTrips {
		if s.scheduledTrips[i].ID == id {
			s.scheduledTrips = append(s.scheduledTrips[:i], s.scheduledTrips[i+1:]...)
			return
		}
	}
}

// ActiveTripForDriver returns the driver's current trip, if any.
func (s *Store) ActiveTripForDriver(driverID string) (models.Trip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.activeTrips {
		if t.DriverID == driverID {
			return t, true
		}
	}
	return models.Trip{}, false
}

// ActiveTripForVehicle returns the trip currently holding the vehicle, if any.
func (s *Store) ActiveTripForVehicle(vehicleID string) (models.Trip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.activeTrips {
		if t.VehicleID == vehicleID {
			return t, true
		}
	}
	return models.Trip{}, false
}

// ApplyTelemetry folds an in-trip reading into the vehicle: fuel level is
// taken as reported, the odometer only ever moves forward. Readings for
// vehicles that are not IN_USE are dropped.
func (s *Store) ApplyTelemetry(reading models.TelemetryReading) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.vehicleIndex(reading.VehicleID)
	if i < 0 || s.vehicles[i].Status != models.VehicleInUse {
		return nil
	}
	if reading.Km > s.vehicles[i].CurrentKm {
		s.vehicles[i].CurrentKm = reading.Km
	}
	if reading.FuelLevel > 0 {
		s.vehicles[i].FuelLevel = reading.FuelLevel
	}
	return s.commit(db.ColVehicles)
}
