package maps

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/greencycle/wastehub/algorithm"
)

const directionsBaseURL = "https://www.google.com/maps/dir/"

var (
	ErrInvalidMapURL = errors.New("invalid map URL: expected a Google Maps link with @lat,lng coordinates")

	coordinatePattern = regexp.MustCompile(`@(-?\d+\.\d+),(-?\d+\.\d+)`)
)

// BuildDirectionsURL renders an ordered path into a Google Maps directions
// deep link using the slash-delimited waypoint form. Returns an empty string
// when the path is empty.
func BuildDirectionsURL(start algorithm.Location, path []algorithm.Location) string {
	if len(path) == 0 {
		return ""
	}

	segments := make([]string, 0, len(path)+1)
	segments = append(segments, formatLocation(start))
	for _, loc := range path {
		segments = append(segments, formatLocation(loc))
	}

	return directionsBaseURL + strings.Join(segments, "/")
}

// ExtractCoordinates parses the coordinate pair out of a shared Google Maps
// link, e.g. https://www.google.com/maps/place/@6.9271,79.8612
func ExtractCoordinates(mapURL string) (algorithm.Location, error) {
	match := coordinatePattern.FindStringSubmatch(mapURL)
	if len(match) < 3 {
		return algorithm.Location{}, ErrInvalidMapURL
	}

	latitude, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return algorithm.Location{}, ErrInvalidMapURL
	}
	longitude, err := strconv.ParseFloat(match[2], 64)
	if err != nil {
		return algorithm.Location{}, ErrInvalidMapURL
	}

	return algorithm.Location{Latitude: latitude, Longitude: longitude}, nil
}

func formatLocation(loc algorithm.Location) string {
	return strconv.FormatFloat(loc.Latitude, 'f', -1, 64) + "," +
		strconv.FormatFloat(loc.Longitude, 'f', -1, 64)
}
