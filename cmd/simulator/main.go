package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"
)

// Trimmed wire mirrors of the server's models; only the fields the
// simulator reads or writes.

type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Vehicle struct {
	ID        string  `json:"id"`
	Plate     string  `json:"plate"`
	Model     string  `json:"model"`
	Status    string  `json:"status"`
	CurrentKm float64 `json:"current_km"`
	FuelLevel float64 `json:"fuel_level"`
}

type Driver struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Trip struct {
	ID          string `json:"id"`
	VehicleID   string `json:"vehicle_id"`
	DriverID    string `json:"driver_id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	City        string `json:"city,omitempty"`
}

type Checklist struct {
	VehicleID    string  `json:"vehicle_id"`
	DriverID     string  `json:"driver_id"`
	Km           float64 `json:"km"`
	FuelLevel    float64 `json:"fuel_level"`
	OilChecked   bool    `json:"oil_checked"`
	WaterChecked bool    `json:"water_checked"`
	TiresChecked bool    `json:"tires_checked"`
}

type Telemetry struct {
	VehicleID string    `json:"vehicle_id"`
	Timestamp time.Time `json:"timestamp"`
	Location  Location  `json:"location"`
	SpeedKmh  float64   `json:"speed_kmh"`
	Km        float64   `json:"km"`
	FuelLevel float64   `json:"fuel_level"`
}

// Routes around the São Paulo metro area.
var routes = []struct {
	Origin      string
	Destination string
	City        string
	Base        Location
}{
	{"Garagem Central", "CD Guarulhos", "Guarulhos", Location{Lat: -23.4538, Lon: -46.5333}},
	{"Garagem Central", "Porto de Santos", "Santos", Location{Lat: -23.9608, Lon: -46.3336}},
	{"Garagem Central", "CD Campinas", "Campinas", Location{Lat: -22.9099, Lon: -47.0626}},
	{"Garagem Central", "Terminal Barueri", "Barueri", Location{Lat: -23.5057, Lon: -46.8764}},
	{"Garagem Central", "CD São Bernardo", "São Bernardo do Campo", Location{Lat: -23.6914, Lon: -46.5646}},
}

func jitterLocation(base Location, meters float64) Location {
	latMetersPerDeg := 111320.0
	dLat := (rand.Float64()*2 - 1) * (meters / latMetersPerDeg)
	dLon := (rand.Float64()*2 - 1) * (meters / latMetersPerDeg)
	return Location{Lat: base.Lat + dLat, Lon: base.Lon + dLon}
}

var authToken string

func apiPost(url string, payload interface{}) (*http.Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	client := &http.Client{Timeout: 10 * time.Second}
	return client.Do(req)
}

func apiGet(url string, out interface{}) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s returned %d", url, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func login(apiURL, username, password string) (Driver, error) {
	resp, err := apiPost(apiURL+"/auth/login", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return Driver{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Driver{}, fmt.Errorf("login failed with status %d", resp.StatusCode)
	}
	var result struct {
		Token  string `json:"token"`
		Driver Driver `json:"driver"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Driver{}, err
	}
	authToken = result.Token
	return result.Driver, nil
}

func pickAvailableVehicle(apiURL string) (Vehicle, error) {
	var vehicles []Vehicle
	if err := apiGet(apiURL+"/vehicles", &vehicles); err != nil {
		return Vehicle{}, err
	}
	var available []Vehicle
	for _, v := range vehicles {
		if v.Status == "AVAILABLE" {
			available = append(available, v)
		}
	}
	if len(available) == 0 {
		return Vehicle{}, fmt.Errorf("no available vehicles")
	}
	return available[rand.Intn(len(available))], nil
}

func startTrip(apiURL string, vehicle Vehicle, driver Driver, routeIdx int) (string, error) {
	route := routes[routeIdx]
	payload := map[string]interface{}{
		"trip": Trip{
			VehicleID:   vehicle.ID,
			DriverID:    driver.ID,
			Origin:      route.Origin,
			Destination: route.Destination,
			City:        route.City,
		},
		"checklist": Checklist{
			VehicleID:    vehicle.ID,
			DriverID:     driver.ID,
			Km:           vehicle.CurrentKm,
			FuelLevel:    vehicle.FuelLevel,
			OilChecked:   true,
			WaterChecked: true,
			TiresChecked: true,
		},
	}
	resp, err := apiPost(apiURL+"/trips/start", payload)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("trip start failed with status %d", resp.StatusCode)
	}

	// The start endpoint mints the id server-side; find it on the active list.
	var active []Trip
	if err := apiGet(apiURL+"/trips/active", &active); err != nil {
		return "", err
	}
	for _, t := range active {
		if t.VehicleID == vehicle.ID {
			return t.ID, nil
		}
	}
	return "", fmt.Errorf("started trip not found on active list")
}

func endTrip(apiURL, tripID string, currentKm float64) error {
	resp, err := apiPost(apiURL+"/trips/end", map[string]interface{}{
		"trip_id":    tripID,
		"current_km": currentKm,
		"expenses": map[string]interface{}{
			"fuel":  50 + rand.Float64()*150,
			"other": rand.Float64() * 40,
			"notes": "simulado",
		},
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("trip end failed with status %d", resp.StatusCode)
	}
	return nil
}

// driveTrip publishes telemetry for one trip until its duration elapses,
// then returns the final odometer reading.
func driveTrip(client mqtt.Client, vehicle Vehicle, tick time.Duration, duration time.Duration) float64 {
	km := vehicle.CurrentKm
	fuel := vehicle.FuelLevel
	base := routes[rand.Intn(len(routes))].Base
	speed := 40 + rand.Float64()*40

	deadline := time.Now().Add(duration)
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for now := range ticker.C {
		if now.After(deadline) {
			return km
		}

		speed += (rand.Float64()*2 - 1) * 5
		if speed < 20 {
			speed = 20
		}
		if speed > 100 {
			speed = 100
		}

		step := speed * (tick.Seconds() / 3600.0)
		km += step
		fuel -= step * 0.35
		if fuel < 2 {
			fuel = 2
		}

		reading := Telemetry{
			VehicleID: vehicle.ID,
			Timestamp: now,
			Location:  jitterLocation(base, 3000),
			SpeedKmh:  speed,
			Km:        km,
			FuelLevel: fuel,
		}
		data, err := json.Marshal(reading)
		if err != nil {
			log.WithError(err).Error("Failed to marshal telemetry")
			continue
		}
		token := client.Publish("fleet/telemetry/"+vehicle.ID, 1, false, data)
		token.Wait()
		if token.Error() != nil {
			log.WithError(token.Error()).Error("Failed to publish telemetry")
			continue
		}
		log.WithFields(log.Fields{
			"vehicle_id": vehicle.ID,
			"km":         fmt.Sprintf("%.1f", km),
			"speed_kmh":  fmt.Sprintf("%.0f", speed),
		}).Info("Published telemetry")
	}
	return km
}

func envDuration(name string, def time.Duration) time.Duration {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			return time.Duration(n) * time.Second
		}
	}
	return def
}

func main() {
	apiURL := os.Getenv("API_BASE_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080/api"
	}
	broker := os.Getenv("MQTT_BROKER")
	if broker == "" {
		broker = "tcp://localhost:1883"
	}
	username := os.Getenv("SIM_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("SIM_PASSWORD")
	if password == "" {
		password = "admin"
	}
	tick := envDuration("SIM_TICK_SECONDS", 2*time.Second)
	tripDuration := envDuration("SIM_TRIP_SECONDS", 120*time.Second)

	log.WithFields(log.Fields{
		"api_url": apiURL,
		"broker":  broker,
		"tick":    tick,
	}).Info("Starting fleet simulation")

	driver, err := login(apiURL, username, password)
	if err != nil {
		log.WithError(err).Fatal("Login failed")
	}
	log.WithField("driver", driver.Name).Info("Logged in")

	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID("fleetflow-simulator").
		SetAutoReconnect(true)
	mqttClient := mqtt.NewClient(opts)
	if token := mqttClient.Connect(); token.Wait() && token.Error() != nil {
		log.WithError(token.Error()).Fatal("MQTT connect failed")
	}
	defer mqttClient.Disconnect(250)

	for {
		vehicle, err := pickAvailableVehicle(apiURL)
		if err != nil {
			log.WithError(err).Warn("No vehicle to drive, retrying")
			time.Sleep(10 * time.Second)
			continue
		}

		routeIdx := rand.Intn(len(routes))
		tripID, err := startTrip(apiURL, vehicle, driver, routeIdx)
		if err != nil {
			log.WithError(err).Error("Failed to start trip")
			time.Sleep(5 * time.Second)
			continue
		}
		log.WithFields(log.Fields{
			"trip_id":     tripID,
			"vehicle_id":  vehicle.ID,
			"plate":       vehicle.Plate,
			"destination": routes[routeIdx].Destination,
		}).Info("Trip started")

		finalKm := driveTrip(mqttClient, vehicle, tick, tripDuration)

		if err := endTrip(apiURL, tripID, finalKm); err != nil {
			log.WithError(err).Error("Failed to end trip")
			continue
		}
		log.WithFields(log.Fields{
			"trip_id":  tripID,
			"final_km": fmt.Sprintf("%.1f", finalKm),
		}).Info("Trip completed")

		time.Sleep(5 * time.Second)
	}
}
