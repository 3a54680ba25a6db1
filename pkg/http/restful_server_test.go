package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "rayhank.xyz/traffic-iot-service/pkg/testing"

	"rayhank.xyz/traffic-iot-service/pkg/blob"
	"rayhank.xyz/traffic-iot-service/pkg/common"
	"rayhank.xyz/traffic-iot-service/pkg/db"
	"rayhank.xyz/traffic-iot-service/pkg/traffic"
)

func setupTestServer(t *testing.T) *RestfulServer {
	blobStore, err := blob.NewFSStore(t.TempDir())
	require.NoError(t, err)

	trafficObj := &traffic.Traffic{
		Db:          *db.GetInstance(db.UseMemorySqliteDialector()),
		Blob:        blobStore,
		TokenSecret: "test-secret",
		TokenTTL:    time.Hour,
	}
	trafficObj.WithServices(traffic.ServiceOpts{
		Account: trafficObj.GetIAccount(),
		Device:  trafficObj.GetIDevice(),
		Value:   trafficObj.GetIValue(),
		Latest:  trafficObj.GetILatest(),
		Todo:    trafficObj.GetITodo(),
	})

	rs := &RestfulServer{
		Server:  gin.Default(),
		Traffic: trafficObj,
		// default we use no limiter, if need, later assign rs.RateLimiterStore = traffic.NewRateLimiterStore(...)
	}

	rs.Setup()

	return rs
}

func doJSON(rs *RestfulServer, method, url, token string, payload any) *httptest.ResponseRecorder {
	var body io.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates a fresh user through the API and returns a bearer
// token for it plus the registered account.
func registerAndLogin(t *testing.T, rs *RestfulServer) (string, UserResponse) {
	email := uuid.NewString() + "@rayhank.com"

	w := doJSON(rs, "POST", "/api/user/create", "", gin.H{
		"email":    email,
		"password": "changeme",
		"name":     "Test User",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var user UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))

	w = doJSON(rs, "POST", "/api/user/token", "", gin.H{
		"email":    email,
		"password": "changeme",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var tokenResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tokenResp))
	require.NotEmpty(t, tokenResp.Token)

	return tokenResp.Token, user
}

func TestHealthCheck(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	rs.Server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAuthRequired(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)

	// every scoped endpoint rejects anonymous callers with 401 before any
	// ownership check
	scoped := []struct {
		method string
		url    string
	}{
		{"GET", "/api/devices"},
		{"POST", "/api/devices"},
		{"GET", "/api/devices/1"},
		{"GET", "/api/devices/1/values"},
		{"POST", "/api/devices/1/values"},
		{"PATCH", "/api/devices/1/values/1"},
		{"GET", "/api/user/person"},
		{"GET", "/api/todos"},
	}

	for _, route := range scoped {
		w := doJSON(rs, route.method, route.url, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.url)
	}

	// garbage tokens are just as anonymous
	w := doJSON(rs, "GET", "/api/devices", "not-a-real-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateUser_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)

	{
		// empty payload should be rejected
		w := doJSON(rs, "POST", "/api/user/create", "", gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		// duplicate email is a validation failure, not a conflict leak
		email := uuid.NewString() + "@rayhank.com"
		payload := gin.H{"email": email, "password": "changeme", "name": "One"}

		w := doJSON(rs, "POST", "/api/user/create", "", payload)
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(rs, "POST", "/api/user/create", "", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		// short password fails field validation
		w := doJSON(rs, "POST", "/api/user/create", "", gin.H{
			"email":    uuid.NewString() + "@rayhank.com",
			"password": "pw",
			"name":     "Shorty",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestCreateToken_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)

	email := uuid.NewString() + "@rayhank.com"
	w := doJSON(rs, "POST", "/api/user/create", "", gin.H{
		"email":    email,
		"password": "changeme",
		"name":     "Ray",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(rs, "POST", "/api/user/token", "", gin.H{
		"email":    email,
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(rs, "POST", "/api/user/token", "", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestManagePerson(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	token, user := registerAndLogin(t, rs)

	w := doJSON(rs, "GET", "/api/user/person", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, user.Email, fetched.Email)

	// name updates; an email key in the payload is ignored
	w = doJSON(rs, "PATCH", "/api/user/person", token, gin.H{
		"name":  "Renamed",
		"email": "hijack@rayhank.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, user.Email, updated.Email, "email is write-once")
}
