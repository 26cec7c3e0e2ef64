package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (rs *RestfulServer) ListNotifications(c *gin.Context) {
	unreadOnly, _ := strconv.ParseBool(c.DefaultQuery("unread", "false"))

	notifications, err := rs.Cattle.Notification.ListNotifications(c.Request.Context(), currentUserID(c), unreadOnly)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (rs *RestfulServer) UnreadCount(c *gin.Context) {
	count, err := rs.Cattle.Notification.UnreadCount(c.Request.Context(), currentUserID(c))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (rs *RestfulServer) MarkRead(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		renderError(c, err)
		return
	}

	if err := rs.Cattle.Notification.MarkRead(c.Request.Context(), currentUserID(c), id); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (rs *RestfulServer) MarkAllRead(c *gin.Context) {
	updated, err := rs.Cattle.Notification.MarkAllRead(c.Request.Context(), currentUserID(c))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

func (rs *RestfulServer) DeleteNotification(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		renderError(c, err)
		return
	}

	if err := rs.Cattle.Notification.DeleteNotification(c.Request.Context(), currentUserID(c), id); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
