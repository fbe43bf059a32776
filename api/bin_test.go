package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockdb "github.com/greencycle/wastehub/db/mock"
	db "github.com/greencycle/wastehub/db/sqlc"
	"github.com/greencycle/wastehub/util"
)

func randomBin(userID int64) db.Bin {
	return db.Bin{
		ID:            util.RandomInt(1, 1000),
		UserID:        userID,
		WasteCategory: db.WasteCategoryOrganic,
		Latitude:      6.9271,
		Longitude:     79.8612,
		LocationName:  "back yard",
		Zone:          "Colombo 03",
		FillLevel:     40,
		Status:        db.BinStatusPending,
		Version:       1,
		CreatedAt:     time.Now(),
	}
}

func TestCreateBinAPI(t *testing.T) {
	user, _ := randomUser(t)
	bin := randomBin(user.ID)

	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OKWithCoordinates",
			body: gin.H{
				"waste_category": db.WasteCategoryOrganic,
				"latitude":       bin.Latitude,
				"longitude":      bin.Longitude,
				"location_name":  bin.LocationName,
				"zone":           bin.Zone,
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					CreateBin(gomock.Any(), gomock.Eq(db.CreateBinParams{
						UserID:        user.ID,
						WasteCategory: db.WasteCategoryOrganic,
						Latitude:      bin.Latitude,
						Longitude:     bin.Longitude,
						LocationName:  bin.LocationName,
						Zone:          bin.Zone,
					})).
					Times(1).
					Return(bin, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)
			},
		},
		{
			name: "OKWithMapURL",
			body: gin.H{
				"waste_category": db.WasteCategoryOrganic,
				"map_url":        "https://www.google.com/maps/@6.9271,79.8612,15z",
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					CreateBin(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ interface{}, arg db.CreateBinParams) (db.Bin, error) {
						require.InDelta(t, 6.9271, arg.Latitude, 1e-6)
						require.InDelta(t, 79.8612, arg.Longitude, 1e-6)
						return bin, nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)
			},
		},
		{
			name: "NoLocation",
			body: gin.H{
				"waste_category": db.WasteCategoryOrganic,
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					CreateBin(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "BadMapURL",
			body: gin.H{
				"waste_category": db.WasteCategoryOrganic,
				"map_url":        "https://example.com/not-a-map",
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					CreateBin(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
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

			request, err := http.NewRequest(http.MethodPost, "/v1/bins", bytes.NewReader(data))
			require.NoError(t, err)

			addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, user.ID, time.Minute)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestUpdateBinAPI(t *testing.T) {
	owner, _ := randomUser(t)
	other, _ := randomUser(t)
	bin := randomBin(owner.ID)

	testCases := []struct {
		name          string
		body          gin.H
		userID        int64
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:   "FillLevelMarksReady",
			body:   gin.H{"fill_level": 95},
			userID: owner.ID,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetBin(gomock.Any(), gomock.Eq(bin.ID)).
					Times(1).
					Return(bin, nil)

				store.EXPECT().
					UpdateBin(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ interface{}, arg db.UpdateBinParams) (db.Bin, error) {
						require.Equal(t, bin.Version, arg.Version)
						require.True(t, arg.FillLevel.Valid)
						require.Equal(t, int32(95), arg.FillLevel.Int32)
						require.True(t, arg.Status.Valid)
						require.Equal(t, db.BinStatusReady, arg.Status.String)

						updated := bin
						updated.FillLevel = 95
						updated.Status = db.BinStatusReady
						updated.Version = bin.Version + 1
						return updated, nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var updated db.Bin
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &updated))
				require.Equal(t, db.BinStatusReady, updated.Status)
			},
		},
		{
			name:   "FillLevelBelowThresholdStaysPending",
			body:   gin.H{"fill_level": 60},
			userID: owner.ID,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetBin(gomock.Any(), gomock.Eq(bin.ID)).
					Times(1).
					Return(bin, nil)

				store.EXPECT().
					UpdateBin(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ interface{}, arg db.UpdateBinParams) (db.Bin, error) {
						require.Equal(t, db.BinStatusPending, arg.Status.String)
						return bin, nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name:   "NotOwner",
			body:   gin.H{"fill_level": 95},
			userID: other.ID,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetBin(gomock.Any(), gomock.Eq(bin.ID)).
					Times(1).
					Return(bin, nil)

				store.EXPECT().
					UpdateBin(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
		{
			name:   "ConcurrentUpdate",
			body:   gin.H{"fill_level": 95},
			userID: owner.ID,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetBin(gomock.Any(), gomock.Eq(bin.ID)).
					Times(1).
					Return(bin, nil)

				store.EXPECT().
					UpdateBin(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Bin{}, db.ErrRecordNotFound)
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

			url := fmt.Sprintf("/v1/bins/%d", bin.ID)
			request, err := http.NewRequest(http.MethodPatch, url, bytes.NewReader(data))
			require.NoError(t, err)

			addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, tc.userID, time.Minute)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
