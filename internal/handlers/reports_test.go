package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/projetoszexit-cpu/FleetFlowPro/internal/models"
	"github.com/projetoszexit-cpu/FleetFlowPro/internal/store"
)

func TestBuildSummary(t *testing.T) {
	s := newTestStore(t)
	h := NewReportHandler(s)

	// two completed trips on vehicle 1
	assert.NoError(t, s.StartTrip(
		models.Trip{ID: "t1", VehicleID: "1", DriverID: "d1", StartTime: time.Now(), StartKm: 45000},
		models.Checklist{VehicleID: "1", DriverID: "d1", Km: 45000, FuelLevel: 75},
	))
	assert.NoError(t, s.EndTrip("t1", 45100, time.Now(), &store.Expenses{Fuel: 120, Other: 10}))
	assert.NoError(t, s.StartTrip(
		models.Trip{ID: "t2", VehicleID: "1", DriverID: "d1", StartTime: time.Now(), StartKm: 45100},
		models.Checklist{VehicleID: "1", DriverID: "d1", Km: 45100, FuelLevel: 60},
	))
	assert.NoError(t, s.EndTrip("t2", 45350, time.Now(), &store.Expenses{Fuel: 200}))

	assert.NoError(t, s.AddFine(models.Fine{VehicleID: "1", DriverID: "d1", Value: 195.23, Points: 5}))

	summary := h.BuildSummary()

	assert.Equal(t, 3, summary.Vehicles)
	assert.Equal(t, 3, summary.Drivers)
	assert.Equal(t, 0, summary.ActiveTrips)
	assert.Equal(t, 2, summary.CompletedTrips)
	assert.Equal(t, 350.0, summary.TotalDistanceKm)
	assert.Equal(t, 320.0, summary.FuelExpense)
	assert.Equal(t, 10.0, summary.OtherExpense)
	assert.Equal(t, 1200.0, summary.MaintenanceCost) // seed record
	assert.Equal(t, 195.23, summary.FinesValue)
	assert.Equal(t, 5, summary.FinesPoints)

	assert.Len(t, summary.PerVehicle, 3)
	assert.Equal(t, "1", summary.PerVehicle[0].VehicleID)
	assert.Equal(t, 2, summary.PerVehicle[0].Trips)
	assert.Equal(t, 350.0, summary.PerVehicle[0].DistanceKm)
	assert.Equal(t, 195.23, summary.PerVehicle[0].FinesValue)
	assert.Equal(t, 1200.0, summary.PerVehicle[2].MaintenanceCost)
}

func TestBuildSummary_DanglingVehicle(t *testing.T) {
	s := newTestStore(t)
	h := NewReportHandler(s)

	assert.NoError(t, s.StartTrip(
		models.Trip{ID: "t1", VehicleID: "1", DriverID: "d1", StartTime: time.Now(), StartKm: 45000},
		models.Checklist{VehicleID: "1", DriverID: "d1", Km: 45000},
	))
	assert.NoError(t, s.EndTrip("t1", 45100, time.Now(), nil))
	assert.NoError(t, s.DeleteVehicle("1"))

	summary := h.BuildSummary()

	assert.Equal(t, 2, summary.Vehicles)
	assert.Equal(t, 1, summary.CompletedTrips)
	// the deleted vehicle's rollup trails the fleet, with no plate
	assert.Len(t, summary.PerVehicle, 3)
	last := summary.PerVehicle[2]
	assert.Equal(t, "1", last.VehicleID)
	assert.Empty(t, last.Plate)
	assert.Equal(t, 1, last.Trips)
}

func TestSummaryEndpoint(t *testing.T) {
	h := NewReportHandler(newTestStore(t))

	req := httptest.NewRequest(http.MethodGet, "/api/reports/summary", nil)
	w := httptest.NewRecorder()
	h.Summary(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var summary FleetSummary
	decodeBody(t, w, &summary)
	assert.Equal(t, 3, summary.Vehicles)
}
