package http

import (
	"net/http"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"
	"liyu1981.xyz/cattle-health-service/pkg/models"
)

type CowRequest struct {
	Tag string `json:"tag" zog:"tag"`
	Age string `json:"age" zog:"age"`
}

var cowRequestSchema = z.Struct(z.Shape{
	"Tag": z.String().Trim().Max(32),
	"Age": z.String().Trim().Max(64),
})

type CheckupRequest struct {
	Status string `json:"status" zog:"status"`
	Date   string `json:"date" zog:"date"`
}

var checkupRequestSchema = z.Struct(z.Shape{
	"Status": z.String().OneOf([]string{string(models.CheckupPending), string(models.CheckupDone)}).Required(),
	"Date":   z.String().Trim(),
})

func (rs *RestfulServer) ListCows(c *gin.Context) {
	cows, err := rs.Cattle.Cow.ListCows(c.Request.Context(), currentUserID(c))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, cows)
}

func (rs *RestfulServer) ListDeletedCows(c *gin.Context) {
	cows, err := rs.Cattle.Cow.ListDeletedCows(c.Request.Context(), currentUserID(c))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, cows)
}

func (rs *RestfulServer) GetCow(c *gin.Context) {
	cow, ok := rs.ownedCow(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, cow)
}

func (rs *RestfulServer) CreateCow(c *gin.Context) {
	var req CowRequest
	if err := cowRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	cow, err := rs.Cattle.Cow.CreateCow(c.Request.Context(), currentUserID(c), models.CowInput{Tag: req.Tag, Age: req.Age})
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cow)
}

func (rs *RestfulServer) UpdateCow(c *gin.Context) {
	cowID, err := parseID(c, "id")
	if err != nil {
		renderError(c, err)
		return
	}

	var req CowRequest
	if err := cowRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	cow, err := rs.Cattle.Cow.UpdateCow(c.Request.Context(), currentUserID(c), cowID, models.CowInput{Tag: req.Tag, Age: req.Age})
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, cow)
}

func (rs *RestfulServer) UpdateCheckup(c *gin.Context) {
	cowID, err := parseID(c, "id")
	if err != nil {
		renderError(c, err)
		return
	}

	var req CheckupRequest
	if err := checkupRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}
	date, err := parseDate(req.Date, false)
	if err != nil {
		renderError(c, err)
		return
	}

	cow, err := rs.Cattle.Cow.UpdateCheckup(c.Request.Context(), currentUserID(c), cowID, models.CheckupInput{
		Status: models.CheckupStatus(req.Status),
		Date:   date,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, cow)
}

func (rs *RestfulServer) SoftDeleteCow(c *gin.Context) {
	cowID, err := parseID(c, "id")
	if err != nil {
		renderError(c, err)
		return
	}

	if err := rs.Cattle.Cow.SoftDeleteCow(c.Request.Context(), currentUserID(c), cowID); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (rs *RestfulServer) RestoreCow(c *gin.Context) {
	cowID, err := parseID(c, "id")
	if err != nil {
		renderError(c, err)
		return
	}

	cow, err := rs.Cattle.Cow.RestoreCow(c.Request.Context(), currentUserID(c), cowID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, cow)
}

func (rs *RestfulServer) PurgeCow(c *gin.Context) {
	cowID, err := parseID(c, "id")
	if err != nil {
		renderError(c, err)
		return
	}

	if err := rs.Cattle.Cow.PurgeCow(c.Request.Context(), currentUserID(c), cowID); err != nil {
		renderError(c, err)
		return
	}
	if rs.RateLimiterStore != nil {
		rs.RateLimiterStore.Forget(cowID)
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
