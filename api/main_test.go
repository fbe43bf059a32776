package api

import (
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	db "github.com/greencycle/wastehub/db/sqlc"
	"github.com/greencycle/wastehub/token"
	"github.com/greencycle/wastehub/util"
	"github.com/greencycle/wastehub/worker"
)

func testServerConfig() util.Config {
	return util.Config{
		TokenSymmetricKey:       util.RandomString(32),
		AccessTokenDuration:     time.Minute,
		RefreshTokenDuration:    time.Hour,
		CollectionFillThreshold: 90,
		OrganicStaleAfter:       48 * time.Hour,
		RouteChunkSize:          15,
		RouteMaxPerRun:          10,
		BillDueAfter:            15 * 24 * time.Hour,
	}
}

func newTestServer(t *testing.T, store db.Store) *Server {
	server, err := NewServer(testServerConfig(), store, nil)
	require.NoError(t, err)

	return server
}

// newTestServerWithTaskDistributor creates a test server with a mock task distributor
func newTestServerWithTaskDistributor(t *testing.T, store db.Store, taskDistributor worker.TaskDistributor) *Server {
	server, err := NewServer(testServerConfig(), store, taskDistributor)
	require.NoError(t, err)

	return server
}

func addAuthorization(
	t *testing.T,
	request *http.Request,
	tokenMaker token.Maker,
	authorizationType string,
	userID int64,
	duration time.Duration,
) {
	accessToken, payload, err := tokenMaker.CreateToken(userID, duration, token.TokenTypeAccessToken)
	require.NoError(t, err)
	require.NotEmpty(t, payload)

	authorizationHeader := fmt.Sprintf("%s %s", authorizationType, accessToken)
	request.Header.Set(authorizationHeaderKey, authorizationHeader)
}

func randomUser(t *testing.T) (user db.User, password string) {
	password = util.RandomString(10)
	hashedPassword, err := util.HashPassword(password)
	require.NoError(t, err)

	user = db.User{
		ID:             util.RandomInt(1, 1000),
		Email:          util.RandomEmail(),
		HashedPassword: hashedPassword,
		FullName:       util.RandomString(8),
		Phone:          util.RandomPhone(),
		CreatedAt:      time.Now(),
	}
	return
}

func activeRole(userID int64, role string) db.UserRole {
	return db.UserRole{
		ID:     util.RandomInt(1, 1000),
		UserID: userID,
		Role:   role,
		Status: "active",
	}
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	os.Exit(m.Run())
}
