package maps

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionsLink(t *testing.T) {
	link := DirectionsLink("Garagem Central", "CD Guarulhos", "", nil)

	assert.True(t, strings.HasPrefix(link, "https://www.google.com/maps/dir/?"))

	u, err := url.Parse(link)
	assert.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "1", q.Get("api"))
	assert.Equal(t, "Garagem Central", q.Get("origin"))
	assert.Equal(t, "CD Guarulhos", q.Get("destination"))
	assert.Equal(t, "driving", q.Get("travelmode"))
	assert.Empty(t, q.Get("waypoints"))
}

func TestDirectionsLink_CityAppendedToDestination(t *testing.T) {
	link := DirectionsLink("Garagem Central", "Porto de Santos", "Santos", nil)

	u, err := url.Parse(link)
	assert.NoError(t, err)
	assert.Equal(t, "Porto de Santos, Santos", u.Query().Get("destination"))
}

func TestDirectionsLink_Waypoints(t *testing.T) {
	link := DirectionsLink("A", "B", "", []string{"Parada 1", "Parada 2"})

	u, err := url.Parse(link)
	assert.NoError(t, err)
	assert.Equal(t, "Parada 1|Parada 2", u.Query().Get("waypoints"))
}
