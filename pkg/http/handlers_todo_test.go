package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rayhank.xyz/traffic-iot-service/pkg/common"
	"rayhank.xyz/traffic-iot-service/pkg/models"
)

func TestTodoCRUD(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	token, _ := registerAndLogin(t, rs)

	w := doJSON(rs, "POST", "/api/todos", token, gin.H{
		"title":       "Calibrate camera",
		"description": "Lens drifted overnight",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var todo models.TodoItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &todo))
	assert.Equal(t, "Calibrate camera", todo.Title)
	assert.False(t, todo.IsCompleted)
	// an omitted due date defaults to a week out
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 7), todo.DueDate, time.Minute)

	todoURL := fmt.Sprintf("/api/todos/%d", todo.ID)

	{
		w := doJSON(rs, "GET", "/api/todos", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var todos []models.TodoItem
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &todos))
		require.Len(t, todos, 1)
		assert.Equal(t, todo.ID, todos[0].ID)
	}

	{
		w := doJSON(rs, "PATCH", todoURL, token, gin.H{"is_completed": true})
		require.Equal(t, http.StatusOK, w.Code)

		var updated models.TodoItem
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.True(t, updated.IsCompleted)
		assert.Equal(t, "Calibrate camera", updated.Title)
	}

	{
		w := doJSON(rs, "DELETE", todoURL, token, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(rs, "GET", todoURL, token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	}
}

func TestTodo_Validation(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	token, _ := registerAndLogin(t, rs)

	w := doJSON(rs, "POST", "/api/todos", token, gin.H{"description": "no title"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTodoOwnershipScoping(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	ownerToken, _ := registerAndLogin(t, rs)
	strangerToken, _ := registerAndLogin(t, rs)

	w := doJSON(rs, "POST", "/api/todos", ownerToken, gin.H{"title": "Private note"})
	require.Equal(t, http.StatusCreated, w.Code)

	var todo models.TodoItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &todo))

	todoURL := fmt.Sprintf("/api/todos/%d", todo.ID)

	w = doJSON(rs, "GET", todoURL, strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Not found."}`, w.Body.String())

	w = doJSON(rs, "DELETE", todoURL, strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(rs, "GET", "/api/todos", strangerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
