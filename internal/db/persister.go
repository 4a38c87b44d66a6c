package db

// Collection names used by the store. Each one maps to a single durable
// entry holding a serialized array of the corresponding entity.
const (
	ColVehicles       = "fleet_vehicles"
	ColDrivers        = "fleet_drivers"
	ColActiveTrips    = "fleet_active_trips"
	ColCompletedTrips = "fleet_completed_trips"
	ColScheduledTrips = "fleet_scheduled_trips"
	ColChecklists     = "fleet_checklists"
	ColMaintenance    = "fleet_maintenance"
	ColFines          = "fleet_fines"
	ColOccurrences    = "fleet_occurrences"
)

// AllCollections lists every persisted collection name.
var AllCollections = []string{
	ColVehicles, ColDrivers, ColActiveTrips, ColCompletedTrips,
	ColScheduledTrips, ColChecklists, ColMaintenance, ColFines,
	ColOccurrences,
}

// Persister is the storage strategy behind the fleet store. Each collection
// is read once at startup and overwritten whole on every mutation.
type Persister interface {
	// Load reads the named collection into out. found is false when the
	// collection has never been saved.
	Load(name string, out interface{}) (found bool, err error)
	// Save overwrites the named collection.
	Save(name string, v interface{}) error
	// Reset removes the named collections.
	Reset(names ...string) error
}
