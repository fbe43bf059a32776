package maps

import (
	"testing"

	"github.com/greencycle/wastehub/algorithm"
	"github.com/stretchr/testify/require"
)

func TestBuildDirectionsURL(t *testing.T) {
	start := algorithm.Location{Latitude: 6.9, Longitude: 79.85}
	path := []algorithm.Location{
		{Latitude: 6.9271, Longitude: 79.8612},
		{Latitude: 6.93, Longitude: 79.87},
	}

	url := BuildDirectionsURL(start, path)
	require.Equal(t, "https://www.google.com/maps/dir/6.9,79.85/6.9271,79.8612/6.93,79.87", url)
}

func TestBuildDirectionsURL_EmptyPath(t *testing.T) {
	start := algorithm.Location{Latitude: 6.9, Longitude: 79.85}
	require.Equal(t, "", BuildDirectionsURL(start, nil))
	require.Equal(t, "", BuildDirectionsURL(start, []algorithm.Location{}))
}

func TestExtractCoordinates(t *testing.T) {
	testCases := []struct {
		name    string
		url     string
		want    algorithm.Location
		wantErr bool
	}{
		{
			name: "place link",
			url:  "https://www.google.com/maps/place/@6.9271,79.8612,17z",
			want: algorithm.Location{Latitude: 6.9271, Longitude: 79.8612},
		},
		{
			name: "negative coordinates",
			url:  "https://www.google.com/maps/@-33.8688,151.2093,12z",
			want: algorithm.Location{Latitude: -33.8688, Longitude: 151.2093},
		},
		{
			name:    "no coordinates",
			url:     "https://www.google.com/maps/place/Colombo",
			wantErr: true,
		},
		{
			name:    "empty",
			url:     "",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			loc, err := ExtractCoordinates(tc.url)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidMapURL)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, loc)
		})
	}
}
