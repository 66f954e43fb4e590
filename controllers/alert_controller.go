package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/idalopban/NutriKallpa-sub005/services"
)

func ListAlerts(c *gin.Context) {
	alerts, err := services.ListAlerts(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alerts)
}
