package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"rayhank.xyz/traffic-iot-service/pkg/models"
	"rayhank.xyz/traffic-iot-service/pkg/traffic"
)

type TodoRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	IsCompleted bool      `json:"is_completed"`
}

var todoRequestSchema = z.Struct(z.Shape{
	"Title":       z.String().Required(),
	"Description": z.String(),
	"DueDate":     z.Time(),
	"IsCompleted": z.Bool(),
})

func (rs *RestfulServer) ListTodos(c *gin.Context) {
	user, _ := CurrentUser(c)

	todos, err := rs.Traffic.Todo.ListTodos(user.ID)
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, todos)
}

func (rs *RestfulServer) CreateTodo(c *gin.Context) {
	user, _ := CurrentUser(c)

	var req TodoRequest
	if err := todoRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	todo, err := rs.Traffic.Todo.CreateTodo(user.ID, &models.TodoItem{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, todo)
}

func (rs *RestfulServer) GetTodo(c *gin.Context) {
	user, _ := CurrentUser(c)

	todoID, ok := uintParam(c, "todo_id")
	if !ok {
		notFound(c)
		return
	}

	todo, err := rs.Traffic.Todo.GetTodo(user.ID, todoID)
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, todo)
}

type TodoPatchRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	IsCompleted *bool      `json:"is_completed"`
}

func (rs *RestfulServer) UpdateTodo(c *gin.Context) {
	user, _ := CurrentUser(c)

	todoID, ok := uintParam(c, "todo_id")
	if !ok {
		notFound(c)
		return
	}

	var req TodoPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	todo, err := rs.Traffic.Todo.UpdateTodo(user.ID, todoID, &traffic.TodoUpdate{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, todo)
}

func (rs *RestfulServer) DeleteTodo(c *gin.Context) {
	user, _ := CurrentUser(c)

	todoID, ok := uintParam(c, "todo_id")
	if !ok {
		notFound(c)
		return
	}

	if err := rs.Traffic.Todo.DeleteTodo(user.ID, todoID); err != nil {
		rs.renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
