package store

import (
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/projetoszexit-cpu/FleetFlowPro/internal/db"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/models"
)

// AddMaintenanceRecord prepends an open record to the maintenance log and
// forces the vehicle into MAINTENANCE, regardless of its prior status. An
// IN_USE vehicle is overridden without touching its active trip; the source
// system behaves the same way.
func (s *Store) AddMaintenanceRecord(record models.MaintenanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	s.maintenance = append([]models.MaintenanceRecord{record}, s.maintenance...)

	if i := s.vehicleIndex(record.VehicleID); i >= 0 {
		s.vehicles[i].Status = models.VehicleMaintenance
	}

	log.WithFields(log.Fields{
		"record_id":  record.ID,
		"vehicle_id": record.VehicleID,
		"service":    record.ServiceType,
	}).Info("Maintenance opened")

	return s.commit(db.ColMaintenance, db.ColVehicles)
}

// ResolveMaintenance releases the vehicle (AVAILABLE, odometer set to
// currentKm) and closes the target record. When recordID is empty the
// vehicle's open record is used. When no record matches the vehicle is
// still released; the store treats a missing record as harmless.
func (s *Store) ResolveMaintenance(vehicleID, recordID string, currentKm float64, returnDate time.Time, finalCost *float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.vehicleIndex(vehicleID); i >= 0 {
		s.vehicles[i].Status = models.VehicleAvailable
		s.vehicles[i].CurrentKm = currentKm
	}

	targetID := recordID
	if targetID == "" {
		for i := range s.maintenance {
			if s.maintenance[i].VehicleID == vehicleID && s.maintenance[i].Open() {
				targetID = s.maintenance[i].ID
				break
			}
		}
	}
	if targetID != "" {
		for i := range s.maintenance {
			if s.maintenance[i].ID == targetID {
				rd := returnDate
				s.maintenance[i].ReturnDate = &rd
				if finalCost != nil {
					s.maintenance[i].Cost = *finalCost
				}
				break
			}
		}
	}

	log.WithFields(log.Fields{
		"vehicle_id": vehicleID,
		"record_id":  targetID,
	}).Info("Maintenance resolved")

	return s.commit(db.ColVehicles, db.ColMaintenance)
}
