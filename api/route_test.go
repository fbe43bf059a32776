package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockdb "github.com/greencycle/wastehub/db/mock"
	db "github.com/greencycle/wastehub/db/sqlc"
	"github.com/greencycle/wastehub/util"
)

func TestGenerateRoutesAPI(t *testing.T) {
	staff, _ := randomUser(t)
	staffRoles := []db.UserRole{activeRole(staff.ID, util.StaffRole)}

	bins := []db.Bin{
		candidateTestBin(1, "Dehiwala", 6.8510, 79.8630),
		candidateTestBin(2, "Dehiwala", 6.8525, 79.8655),
		candidateTestBin(3, "Moratuwa", 6.7730, 79.8816),
	}

	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: gin.H{},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListUserRoles(gomock.Any(), gomock.Eq(staff.ID)).
					Times(1).
					Return(staffRoles, nil)

				store.EXPECT().
					ListCollectionCandidateBins(gomock.Any(), gomock.Any()).
					Times(1).
					Return(bins, nil)

				// one route per zone
				store.EXPECT().
					CreateRouteTx(gomock.Any(), gomock.Any()).
					Times(2).
					DoAndReturn(func(_ interface{}, arg db.CreateRouteTxParams) (db.CreateRouteTxResult, error) {
						require.NotEmpty(t, arg.Stops)
						require.True(t, strings.HasPrefix(arg.DirectionsUrl, "https://www.google.com/maps/dir/"))
						result := db.CreateRouteTxResult{
							Route: db.Route{
								ID:     util.RandomInt(1, 1000),
								Name:   arg.Name,
								Zone:   arg.Zone,
								Status: db.RouteStatusPlanned,
							},
						}
						for _, stop := range arg.Stops {
							result.Stops = append(result.Stops, db.RouteStop{
								RouteID: result.Route.ID,
								BinID:   stop.BinID,
								SeqNo:   stop.SeqNo,
							})
						}
						return result, nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var result struct {
					Routes         []db.Route `json:"routes"`
					CandidateCount int        `json:"candidate_count"`
					RouteCount     int        `json:"route_count"`
				}
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
				require.Equal(t, 3, result.CandidateCount)
				require.Equal(t, 2, result.RouteCount)
			},
		},
		{
			name: "NoCandidates",
			body: gin.H{"zone": "Nugegoda"},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListUserRoles(gomock.Any(), gomock.Eq(staff.ID)).
					Times(1).
					Return(staffRoles, nil)

				store.EXPECT().
					ListCollectionCandidateBins(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ interface{}, arg db.ListCollectionCandidateBinsParams) ([]db.Bin, error) {
						require.True(t, arg.Zone.Valid)
						require.Equal(t, "Nugegoda", arg.Zone.String)
						return []db.Bin{}, nil
					})

				store.EXPECT().
					CreateRouteTx(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var result struct {
					RouteCount int    `json:"route_count"`
					Message    string `json:"message"`
				}
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
				require.Equal(t, 0, result.RouteCount)
				require.NotEmpty(t, result.Message)
			},
		},
		{
			name: "InternalError",
			body: gin.H{},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListUserRoles(gomock.Any(), gomock.Eq(staff.ID)).
					Times(1).
					Return(staffRoles, nil)

				store.EXPECT().
					ListCollectionCandidateBins(gomock.Any(), gomock.Any()).
					Times(1).
					Return(nil, fmt.Errorf("connection refused"))
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/v1/routes/generate", bytes.NewReader(data))
			require.NoError(t, err)

			addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, staff.ID, time.Minute)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestCollectStopAPI(t *testing.T) {
	driver, _ := randomUser(t)
	driverRoles := []db.UserRole{activeRole(driver.ID, util.DriverRole)}

	stopID := util.RandomInt(1, 1000)

	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: gin.H{"weight": 42.5, "notes": "side gate"},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListUserRoles(gomock.Any(), gomock.Eq(driver.ID)).
					Times(1).
					Return(driverRoles, nil)

				store.EXPECT().
					CollectStopTx(gomock.Any(), gomock.Eq(db.CollectStopTxParams{
						StopID: stopID,
						Weight: 42.5,
						Notes:  "side gate",
					})).
					Times(1).
					Return(db.CollectStopTxResult{
						Stop:           db.RouteStop{ID: stopID, Collected: true},
						Bin:            db.Bin{FillLevel: 0, Status: db.BinStatusPending},
						Route:          db.Route{Status: db.RouteStatusCompleted},
						RouteCompleted: true,
					}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var rsp collectStopResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &rsp))
				require.True(t, rsp.Stop.Collected)
				require.True(t, rsp.RouteCompleted)
			},
		},
		{
			name: "AlreadyCollected",
			body: gin.H{},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListUserRoles(gomock.Any(), gomock.Eq(driver.ID)).
					Times(1).
					Return(driverRoles, nil)

				store.EXPECT().
					CollectStopTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.CollectStopTxResult{}, fmt.Errorf("mark stop collected: %w", db.ErrRecordNotFound))
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			url := fmt.Sprintf("/v1/routes/stops/%d/collect", stopID)
			request, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
			require.NoError(t, err)

			addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, driver.ID, time.Minute)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestDeleteRouteAPI(t *testing.T) {
	staff, _ := randomUser(t)
	staffRoles := []db.UserRole{activeRole(staff.ID, util.StaffRole)}

	testCases := []struct {
		name          string
		route         db.Route
		buildStubs    func(store *mockdb.MockStore, route db.Route)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:  "OK",
			route: db.Route{ID: 5, Status: db.RouteStatusPlanned},
			buildStubs: func(store *mockdb.MockStore, route db.Route) {
				store.EXPECT().
					ListUserRoles(gomock.Any(), gomock.Eq(staff.ID)).
					Times(1).
					Return(staffRoles, nil)

				store.EXPECT().
					GetRoute(gomock.Any(), gomock.Eq(route.ID)).
					Times(1).
					Return(route, nil)

				store.EXPECT().
					DeleteRouteStops(gomock.Any(), gomock.Eq(route.ID)).
					Times(1).
					Return(nil)

				store.EXPECT().
					DeleteRoute(gomock.Any(), gomock.Eq(route.ID)).
					Times(1).
					Return(nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name:  "InProgress",
			route: db.Route{ID: 6, Status: db.RouteStatusInProgress},
			buildStubs: func(store *mockdb.MockStore, route db.Route) {
				store.EXPECT().
					ListUserRoles(gomock.Any(), gomock.Eq(staff.ID)).
					Times(1).
					Return(staffRoles, nil)

				store.EXPECT().
					GetRoute(gomock.Any(), gomock.Eq(route.ID)).
					Times(1).
					Return(route, nil)

				store.EXPECT().
					DeleteRouteStops(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store, tc.route)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			url := fmt.Sprintf("/v1/routes/%d", tc.route.ID)
			request, err := http.NewRequest(http.MethodDelete, url, nil)
			require.NoError(t, err)

			addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, staff.ID, time.Minute)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func candidateTestBin(id int64, zone string, lat, lng float64) db.Bin {
	return db.Bin{
		ID:            id,
		UserID:        id,
		WasteCategory: db.WasteCategoryPlastic,
		Latitude:      lat,
		Longitude:     lng,
		Zone:          zone,
		FillLevel:     95,
		Status:        db.BinStatusReady,
	}
}
