// Package maps builds external navigation deep links. Nothing here calls a
// maps API; the link is opened by the client and no response is consumed.
package maps

import (
	"net/url"
	"strings"
)

const directionsBase = "https://www.google.com/maps/dir/"

// DirectionsLink URL-encodes a trip into a Google Maps direction request.
// When city is non-empty it is appended to the destination, matching how
// trips carry city separately from the street address.
func DirectionsLink(origin, destination, city string, waypoints []string) string {
	dest := destination
	if city != "" {
		dest += ", " + city
	}

	params := url.Values{}
	params.Set("api", "1")
	params.Set("origin", origin)
	params.Set("destination", dest)
	if len(waypoints) > 0 {
		params.Set("waypoints", strings.Join(waypoints, "|"))
	}
	params.Set("travelmode", "driving")

	return directionsBase + "?" + params.Encode()
}
