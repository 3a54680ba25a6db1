package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"rayhank.xyz/traffic-iot-service/pkg/models"
	"rayhank.xyz/traffic-iot-service/pkg/traffic"
)

type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

var createUserRequestSchema = z.Struct(z.Shape{
	"Email":    z.String().Email().Required(),
	"Password": z.String().Min(5).Required(),
	"Name":     z.String().Required(),
})

type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func userResponse(user *models.User) UserResponse {
	return UserResponse{ID: user.ID, Email: user.Email, Name: user.Name}
}

func (rs *RestfulServer) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := createUserRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	user, err := rs.Traffic.Account.CreateUser(req.Email, req.Password, req.Name)
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, userResponse(user))
}

type TokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var tokenRequestSchema = z.Struct(z.Shape{
	"Email":    z.String().Required(),
	"Password": z.String().Required(),
})

func (rs *RestfulServer) CreateToken(c *gin.Context) {
	var req TokenRequest
	if err := tokenRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	token, err := rs.Traffic.Account.IssueToken(req.Email, req.Password)
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (rs *RestfulServer) GetPerson(c *gin.Context) {
	user, _ := CurrentUser(c)
	c.JSON(http.StatusOK, userResponse(user))
}

type PersonPatchRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

func (rs *RestfulServer) UpdatePerson(c *gin.Context) {
	user, _ := CurrentUser(c)

	// email is write-once; an "email" key in the payload is simply dropped
	var req PersonPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := rs.Traffic.Account.UpdateUser(user.ID, &traffic.AccountUpdate{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, userResponse(updated))
}
