package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/idalopban/NutriKallpa-sub005/anthro"
	"github.com/idalopban/NutriKallpa-sub005/services"
)

func CreateMeasurement(c *gin.Context) {
	p, err := services.GetPatient(c.GetUint("userID"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var input services.MeasurementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := services.CreateMeasurement(p, &input)
	if err != nil {
		var mfe *anthro.MissingFieldsError
		if errors.As(err, &mfe) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":          "missing required fields",
				"category":       mfe.Categoria,
				"missing_fields": mfe.Campos,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, m)
}

func ListMeasurements(c *gin.Context) {
	p, err := services.GetPatient(c.GetUint("userID"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ms, err := services.ListMeasurements(p.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ms)
}

func GetMeasurement(c *gin.Context) {
	p, err := services.GetPatient(c.GetUint("userID"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	mid, err := strconv.ParseUint(c.Param("mid"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid measurement id"})
		return
	}
	m, err := services.GetMeasurement(p.ID, uint(mid))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, m)
}

func DeleteMeasurement(c *gin.Context) {
	p, err := services.GetPatient(c.GetUint("userID"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	mid, err := strconv.ParseUint(c.Param("mid"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid measurement id"})
		return
	}
	if err := services.DeleteMeasurement(p.ID, uint(mid)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "measurement deleted"})
}
