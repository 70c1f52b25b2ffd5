// File: controllers/stats.controller.go
package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports whether the database is reachable.
func (ctrl *Controller) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "connected"
	if ctrl.DB == nil || ctrl.DB.Ping(ctx) != nil {
		dbStatus = "disconnected"
	}

	body := gin.H{
		"status":    "ok",
		"database":  dbStatus,
		"timestamp": time.Now().Unix(),
	}
	if ctrl.Media != nil {
		body["media"] = ctrl.Media.State().String()
	}
	c.JSON(http.StatusOK, body)
}

// GetStats returns product counts.
func (ctrl *Controller) GetStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), ctrl.timeout())
	defer cancel()

	stats, err := ctrl.Products.Stats(ctx)
	if err != nil {
		writeFailure(c, "GetStats", err, false)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
