package http

import (
	"net/http"
	"time"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"
	"liyu1981.xyz/cattle-health-service/pkg/auth"
	"liyu1981.xyz/cattle-health-service/pkg/metrics"
	"liyu1981.xyz/cattle-health-service/pkg/models"
)

type RegisterRequest struct {
	Name     string `json:"name" zog:"name"`
	Email    string `json:"email" zog:"email"`
	Password string `json:"password" zog:"password"`
}

var registerRequestSchema = z.Struct(z.Shape{
	"Name":     z.String().Trim().Min(1).Max(100).Required(),
	"Email":    z.String().Trim().Email().Required(),
	"Password": z.String().Min(auth.MinPasswordLength).Required(),
})

type LoginRequest struct {
	Email    string `json:"email" zog:"email"`
	Password string `json:"password" zog:"password"`
}

var loginRequestSchema = z.Struct(z.Shape{
	"Email":    z.String().Trim().Required(),
	"Password": z.String().Required(),
})

type TokenResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
}

func (rs *RestfulServer) issueToken(c *gin.Context, status int, user *models.User) {
	if rs.Tokens == nil {
		renderError(c, errTokensUnavailable)
		return
	}
	token, expiresAt, err := rs.Tokens.Issue(user.ID, user.Email)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(status, TokenResponse{Token: token, ExpiresAt: expiresAt, User: user})
}

func (rs *RestfulServer) Register(c *gin.Context) {
	var req RegisterRequest
	if err := registerRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	user, err := rs.Cattle.User.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		renderError(c, err)
		return
	}
	rs.issueToken(c, http.StatusCreated, user)
}

func (rs *RestfulServer) Login(c *gin.Context) {
	var req LoginRequest
	if err := loginRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	user, err := rs.Cattle.User.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("failure").Inc()
		renderError(c, err)
		return
	}

	metrics.AuthAttempts.WithLabelValues("success").Inc()
	rs.issueToken(c, http.StatusOK, user)
}

func (rs *RestfulServer) Me(c *gin.Context) {
	user, err := rs.Cattle.User.GetUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
