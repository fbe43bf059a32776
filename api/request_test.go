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
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/greencycle/wastehub/algorithm"
	mockdb "github.com/greencycle/wastehub/db/mock"
	db "github.com/greencycle/wastehub/db/sqlc"
	"github.com/greencycle/wastehub/token"
	"github.com/greencycle/wastehub/util"
)

func randomRequest(userID int64, status string) db.Request {
	return db.Request{
		ID:            util.RandomInt(1, 1000),
		UserID:        userID,
		RequestType:   algorithm.RequestTypeNormal,
		WasteCategory: db.WasteCategoryOrganic,
		Address:       "12 Temple Road, Colombo",
		Urgency:       algorithm.UrgencyMedium,
		EstimatedWeight: pgtype.Float8{
			Float64: 10,
			Valid:   true,
		},
		BaseFee:    800,
		WeightFee:  500,
		UrgencyFee: 200,
		TotalFee:   1500,
		Status:     status,
		CreatedAt:  time.Now(),
	}
}

func TestCreateRequestAPI(t *testing.T) {
	user, _ := randomUser(t)

	testCases := []struct {
		name          string
		body          gin.H
		setupAuth     func(t *testing.T, request *http.Request, tokenMaker token.Maker)
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: gin.H{
				"request_type":     algorithm.RequestTypeNormal,
				"waste_category":   db.WasteCategoryOrganic,
				"address":          "12 Temple Road, Colombo",
				"urgency":          algorithm.UrgencyMedium,
				"estimated_weight": 10,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					CreateRequest(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ interface{}, arg db.CreateRequestParams) (db.Request, error) {
						// fee is computed server-side, never trusted from the client
						require.Equal(t, int64(800), arg.BaseFee)
						require.Equal(t, int64(500), arg.WeightFee)
						require.Equal(t, int64(200), arg.UrgencyFee)
						require.Equal(t, int64(0), arg.SpecialHandlingFee)
						require.Equal(t, int64(1500), arg.TotalFee)
						return randomRequest(user.ID, db.RequestStatusPending), nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)
			},
		},
		{
			name: "HazardousSurcharge",
			body: gin.H{
				"request_type":   algorithm.RequestTypeHazardous,
				"waste_category": db.WasteCategoryOther,
				"address":        "12 Temple Road, Colombo",
				"urgency":        algorithm.UrgencyHigh,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					CreateRequest(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ interface{}, arg db.CreateRequestParams) (db.Request, error) {
						require.Equal(t, int64(2000), arg.BaseFee)
						require.Equal(t, int64(500), arg.SpecialHandlingFee)
						require.Equal(t, int64(3000), arg.TotalFee)
						return randomRequest(user.ID, db.RequestStatusPending), nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)
			},
		},
		{
			name: "InvalidUrgency",
			body: gin.H{
				"request_type":   algorithm.RequestTypeNormal,
				"waste_category": db.WasteCategoryOrganic,
				"address":        "12 Temple Road, Colombo",
				"urgency":        "immediately",
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					CreateRequest(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "NoAuthorization",
			body: gin.H{
				"request_type":   algorithm.RequestTypeNormal,
				"waste_category": db.WasteCategoryOrganic,
				"address":        "12 Temple Road, Colombo",
				"urgency":        algorithm.UrgencyLow,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					CreateRequest(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
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

			request, err := http.NewRequest(http.MethodPost, "/v1/requests", bytes.NewReader(data))
			require.NoError(t, err)

			tc.setupAuth(t, request, server.tokenMaker)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestApproveRequestAPI(t *testing.T) {
	staff, _ := randomUser(t)
	resident, _ := randomUser(t)
	request := randomRequest(resident.ID, db.RequestStatusApproved)

	staffRoles := []db.UserRole{activeRole(staff.ID, util.StaffRole)}

	testCases := []struct {
		name          string
		requestID     int64
		setupAuth     func(t *testing.T, request *http.Request, tokenMaker token.Maker)
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:      "OK",
			requestID: request.ID,
			setupAuth: func(t *testing.T, r *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, r, tokenMaker, authorizationTypeBearer, staff.ID, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListUserRoles(gomock.Any(), gomock.Eq(staff.ID)).
					Times(1).
					Return(staffRoles, nil)

				store.EXPECT().
					ApproveRequest(gomock.Any(), gomock.Eq(request.ID)).
					Times(1).
					Return(request, nil)

				store.EXPECT().
					CreateBillingTx(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ interface{}, arg db.CreateBillingTxParams) (db.CreateBillingTxResult, error) {
						require.Equal(t, resident.ID, arg.UserID)
						require.Equal(t, request.ID, arg.RequestID)
						require.Equal(t, request.TotalFee, arg.Amount)
						return db.CreateBillingTxResult{
							Bill: db.PaymentBill{ID: 7, UserID: resident.ID, TotalAmount: request.TotalFee},
						}, nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var rsp approveRequestResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &rsp))
				require.NotNil(t, rsp.Bill)
				require.Empty(t, rsp.Warnings)
			},
		},
		{
			name:      "BillingDegraded",
			requestID: request.ID,
			setupAuth: func(t *testing.T, r *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, r, tokenMaker, authorizationTypeBearer, staff.ID, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListUserRoles(gomock.Any(), gomock.Eq(staff.ID)).
					Times(1).
					Return(staffRoles, nil)

				store.EXPECT().
					ApproveRequest(gomock.Any(), gomock.Eq(request.ID)).
					Times(1).
					Return(request, nil)

				store.EXPECT().
					CreateBillingTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.CreateBillingTxResult{}, fmt.Errorf("connection reset"))
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				// approval survives a billing failure, the response says so
				require.Equal(t, http.StatusOK, recorder.Code)

				var rsp approveRequestResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &rsp))
				require.Nil(t, rsp.Bill)
				require.NotEmpty(t, rsp.Warnings)
			},
		},
		{
			name:      "StateConflict",
			requestID: request.ID,
			setupAuth: func(t *testing.T, r *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, r, tokenMaker, authorizationTypeBearer, staff.ID, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListUserRoles(gomock.Any(), gomock.Eq(staff.ID)).
					Times(1).
					Return(staffRoles, nil)

				store.EXPECT().
					ApproveRequest(gomock.Any(), gomock.Eq(request.ID)).
					Times(1).
					Return(db.Request{}, db.ErrRecordNotFound)

				rejected := randomRequest(resident.ID, db.RequestStatusRejected)
				rejected.ID = request.ID
				store.EXPECT().
					GetRequest(gomock.Any(), gomock.Eq(request.ID)).
					Times(1).
					Return(rejected, nil)

				store.EXPECT().
					CreateBillingTx(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name:      "NotFound",
			requestID: request.ID,
			setupAuth: func(t *testing.T, r *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, r, tokenMaker, authorizationTypeBearer, staff.ID, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListUserRoles(gomock.Any(), gomock.Eq(staff.ID)).
					Times(1).
					Return(staffRoles, nil)

				store.EXPECT().
					ApproveRequest(gomock.Any(), gomock.Eq(request.ID)).
					Times(1).
					Return(db.Request{}, db.ErrRecordNotFound)

				store.EXPECT().
					GetRequest(gomock.Any(), gomock.Eq(request.ID)).
					Times(1).
					Return(db.Request{}, db.ErrRecordNotFound)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name:      "ForbiddenForResident",
			requestID: request.ID,
			setupAuth: func(t *testing.T, r *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, r, tokenMaker, authorizationTypeBearer, resident.ID, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListUserRoles(gomock.Any(), gomock.Eq(resident.ID)).
					Times(1).
					Return([]db.UserRole{activeRole(resident.ID, util.ResidentRole)}, nil)

				store.EXPECT().
					ApproveRequest(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
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

			url := fmt.Sprintf("/v1/requests/%d/approve", tc.requestID)
			request, err := http.NewRequest(http.MethodPost, url, nil)
			require.NoError(t, err)

			tc.setupAuth(t, request, server.tokenMaker)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestScheduleRequestAPI(t *testing.T) {
	staff, _ := randomUser(t)
	resident, _ := randomUser(t)
	driver, _ := randomUser(t)
	truck := db.Truck{ID: util.RandomInt(1, 100), PlateNumber: "WP-1234", CapacityKg: 5000}
	request := randomRequest(resident.ID, db.RequestStatusScheduled)

	staffRoles := []db.UserRole{activeRole(staff.ID, util.StaffRole)}
	body := gin.H{
		"driver_id":      driver.ID,
		"truck_id":       truck.ID,
		"scheduled_date": "2026-09-05",
	}

	testCases := []struct {
		name          string
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListUserRoles(gomock.Any(), gomock.Eq(staff.ID)).
					Times(1).
					Return(staffRoles, nil)

				store.EXPECT().
					GetUser(gomock.Any(), gomock.Eq(driver.ID)).
					Times(1).
					Return(driver, nil)

				store.EXPECT().
					ListUserRoles(gomock.Any(), gomock.Eq(driver.ID)).
					Times(1).
					Return([]db.UserRole{activeRole(driver.ID, util.DriverRole)}, nil)

				store.EXPECT().
					GetTruck(gomock.Any(), gomock.Eq(truck.ID)).
					Times(1).
					Return(truck, nil)

				store.EXPECT().
					ScheduleRequest(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ interface{}, arg db.ScheduleRequestParams) (db.Request, error) {
						require.Equal(t, driver.ID, arg.DriverID.Int64)
						require.Equal(t, truck.ID, arg.TruckID.Int64)
						return request, nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name: "AssigneeNotADriver",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListUserRoles(gomock.Any(), gomock.Eq(staff.ID)).
					Times(1).
					Return(staffRoles, nil)

				store.EXPECT().
					GetUser(gomock.Any(), gomock.Eq(driver.ID)).
					Times(1).
					Return(driver, nil)

				store.EXPECT().
					ListUserRoles(gomock.Any(), gomock.Eq(driver.ID)).
					Times(1).
					Return([]db.UserRole{activeRole(driver.ID, util.ResidentRole)}, nil)

				store.EXPECT().
					ScheduleRequest(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "TruckNotFound",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListUserRoles(gomock.Any(), gomock.Eq(staff.ID)).
					Times(1).
					Return(staffRoles, nil)

				store.EXPECT().
					GetUser(gomock.Any(), gomock.Eq(driver.ID)).
					Times(1).
					Return(driver, nil)

				store.EXPECT().
					ListUserRoles(gomock.Any(), gomock.Eq(driver.ID)).
					Times(1).
					Return([]db.UserRole{activeRole(driver.ID, util.DriverRole)}, nil)

				store.EXPECT().
					GetTruck(gomock.Any(), gomock.Eq(truck.ID)).
					Times(1).
					Return(db.Truck{}, db.ErrRecordNotFound)

				store.EXPECT().
					ScheduleRequest(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "NotApproved",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListUserRoles(gomock.Any(), gomock.Eq(staff.ID)).
					Times(1).
					Return(staffRoles, nil)

				store.EXPECT().
					GetUser(gomock.Any(), gomock.Eq(driver.ID)).
					Times(1).
					Return(driver, nil)

				store.EXPECT().
					ListUserRoles(gomock.Any(), gomock.Eq(driver.ID)).
					Times(1).
					Return([]db.UserRole{activeRole(driver.ID, util.DriverRole)}, nil)

				store.EXPECT().
					GetTruck(gomock.Any(), gomock.Eq(truck.ID)).
					Times(1).
					Return(truck, nil)

				store.EXPECT().
					ScheduleRequest(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Request{}, db.ErrRecordNotFound)

				pending := randomRequest(resident.ID, db.RequestStatusPending)
				pending.ID = request.ID
				store.EXPECT().
					GetRequest(gomock.Any(), gomock.Eq(request.ID)).
					Times(1).
					Return(pending, nil)
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

			data, err := json.Marshal(body)
			require.NoError(t, err)

			url := fmt.Sprintf("/v1/requests/%d/schedule", request.ID)
			req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
			require.NoError(t, err)

			addAuthorization(t, req, server.tokenMaker, authorizationTypeBearer, staff.ID, time.Minute)
			server.router.ServeHTTP(recorder, req)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestRejectRequestAPI(t *testing.T) {
	staff, _ := randomUser(t)
	resident, _ := randomUser(t)
	request := randomRequest(resident.ID, db.RequestStatusRejected)
	request.RejectionReason = "outside service area"

	staffRoles := []db.UserRole{activeRole(staff.ID, util.StaffRole)}

	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: gin.H{"reason": "outside service area"},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListUserRoles(gomock.Any(), gomock.Eq(staff.ID)).
					Times(1).
					Return(staffRoles, nil)

				store.EXPECT().
					RejectRequest(gomock.Any(), gomock.Eq(db.RejectRequestParams{
						ID:              request.ID,
						RejectionReason: "outside service area",
					})).
					Times(1).
					Return(request, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name: "MissingReason",
			body: gin.H{},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListUserRoles(gomock.Any(), gomock.Eq(staff.ID)).
					Times(1).
					Return(staffRoles, nil)

				store.EXPECT().
					RejectRequest(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "AlreadyCompleted",
			body: gin.H{"reason": "outside service area"},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListUserRoles(gomock.Any(), gomock.Eq(staff.ID)).
					Times(1).
					Return(staffRoles, nil)

				store.EXPECT().
					RejectRequest(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Request{}, db.ErrRecordNotFound)

				completed := randomRequest(resident.ID, db.RequestStatusCompleted)
				completed.ID = request.ID
				store.EXPECT().
					GetRequest(gomock.Any(), gomock.Eq(request.ID)).
					Times(1).
					Return(completed, nil)
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

			url := fmt.Sprintf("/v1/requests/%d/reject", request.ID)
			req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
			require.NoError(t, err)

			addAuthorization(t, req, server.tokenMaker, authorizationTypeBearer, staff.ID, time.Minute)
			server.router.ServeHTTP(recorder, req)
			tc.checkResponse(t, recorder)
		})
	}
}
