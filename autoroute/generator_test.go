package autoroute

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/greencycle/wastehub/algorithm"
	mockdb "github.com/greencycle/wastehub/db/mock"
	db "github.com/greencycle/wastehub/db/sqlc"
	"github.com/greencycle/wastehub/util"
)

func testConfig() util.Config {
	return util.Config{
		CollectionFillThreshold: 90,
		OrganicStaleAfter:       48 * time.Hour,
		RouteChunkSize:          15,
		RouteMaxPerRun:          10,
		DepotLatitude:           6.9271,
		DepotLongitude:          79.8612,
	}
}

func candidateBin(id int64, zone string, lat, lng float64) db.Bin {
	return db.Bin{
		ID:            id,
		WasteCategory: db.WasteCategoryPlastic,
		Latitude:      lat,
		Longitude:     lng,
		Zone:          zone,
		FillLevel:     95,
		Status:        db.BinStatusReady,
	}
}

func TestGenerateCreatesRoutePerZone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mockdb.NewMockStore(ctrl)

	bins := []db.Bin{
		candidateBin(1, "Kollupitiya", 6.9100, 79.8500),
		candidateBin(2, "Kollupitiya", 6.9150, 79.8520),
		candidateBin(3, "Dehiwala", 6.8500, 79.8700),
	}

	store.EXPECT().
		ListCollectionCandidateBins(gomock.Any(), gomock.Any()).
		Times(1).
		Return(bins, nil)

	var created []db.CreateRouteTxParams
	store.EXPECT().
		CreateRouteTx(gomock.Any(), gomock.Any()).
		Times(2).
		DoAndReturn(func(_ context.Context, arg db.CreateRouteTxParams) (db.CreateRouteTxResult, error) {
			created = append(created, arg)
			route := db.Route{
				ID:     int64(len(created)),
				Name:   arg.Name,
				Zone:   arg.Zone,
				Status: db.RouteStatusPlanned,
			}
			return db.CreateRouteTxResult{Route: route}, nil
		})

	generator := NewGenerator(testConfig(), store)
	result, err := generator.Generate(context.Background(), GenerateParams{})
	require.NoError(t, err)

	require.Equal(t, 3, result.CandidateCount)
	require.Equal(t, 2, result.RouteCount)
	require.Len(t, result.Routes, 2)

	// zones come out in first-seen order
	require.Equal(t, "Kollupitiya", created[0].Zone)
	require.Equal(t, "Dehiwala", created[1].Zone)

	// stops are numbered from 1 in visiting order and carry the bin coordinates
	require.Len(t, created[0].Stops, 2)
	for i, stop := range created[0].Stops {
		require.Equal(t, int32(i+1), stop.SeqNo)
	}
	require.Contains(t, created[0].DirectionsUrl, "https://www.google.com/maps/dir/")
	require.Positive(t, created[0].EstimatedDurationMinutes)
	require.Positive(t, created[0].EstimatedDistanceKm)
}

func TestGenerateNoCandidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mockdb.NewMockStore(ctrl)

	store.EXPECT().
		ListCollectionCandidateBins(gomock.Any(), gomock.Any()).
		Times(1).
		Return([]db.Bin{}, nil)

	generator := NewGenerator(testConfig(), store)
	result, err := generator.Generate(context.Background(), GenerateParams{})
	require.NoError(t, err)
	require.Zero(t, result.RouteCount)
	require.Empty(t, result.Routes)
	require.NotEmpty(t, result.Message)
}

func TestGenerateZoneFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mockdb.NewMockStore(ctrl)

	store.EXPECT().
		ListCollectionCandidateBins(gomock.Any(), gomock.Any()).
		Times(1).
		DoAndReturn(func(_ context.Context, arg db.ListCollectionCandidateBinsParams) ([]db.Bin, error) {
			require.True(t, arg.Zone.Valid)
			require.Equal(t, "Dehiwala", arg.Zone.String)
			require.Equal(t, int32(90), arg.FillThreshold)
			return []db.Bin{candidateBin(3, "Dehiwala", 6.8500, 79.8700)}, nil
		})

	store.EXPECT().
		CreateRouteTx(gomock.Any(), gomock.Any()).
		Times(1).
		Return(db.CreateRouteTxResult{Route: db.Route{ID: 1, Zone: "Dehiwala"}}, nil)

	generator := NewGenerator(testConfig(), store)
	result, err := generator.Generate(context.Background(), GenerateParams{Zone: "Dehiwala"})
	require.NoError(t, err)
	require.Equal(t, 1, result.RouteCount)
}

func TestGenerateMaxRoutesCap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mockdb.NewMockStore(ctrl)

	// 40 unzoned bins chunk into 3 routes of 15/15/10; cap at 2
	bins := make([]db.Bin, 40)
	for i := range bins {
		bins[i] = candidateBin(int64(i+1), "", 6.90+float64(i)*0.001, 79.85)
	}

	store.EXPECT().
		ListCollectionCandidateBins(gomock.Any(), gomock.Any()).
		Times(1).
		Return(bins, nil)

	store.EXPECT().
		CreateRouteTx(gomock.Any(), gomock.Any()).
		Times(2).
		DoAndReturn(func(_ context.Context, arg db.CreateRouteTxParams) (db.CreateRouteTxResult, error) {
			require.Equal(t, algorithm.UnknownZone, arg.Zone)
			require.Len(t, arg.Stops, 15)
			return db.CreateRouteTxResult{Route: db.Route{Zone: arg.Zone}}, nil
		})

	generator := NewGenerator(testConfig(), store)
	result, err := generator.Generate(context.Background(), GenerateParams{MaxRoutes: 2})
	require.NoError(t, err)
	require.Equal(t, 2, result.RouteCount)
}
