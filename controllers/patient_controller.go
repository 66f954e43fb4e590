package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/idalopban/NutriKallpa-sub005/services"
)

func CreatePatient(c *gin.Context) {
	var input services.PatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := services.CreatePatient(c.GetUint("userID"), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

func ListPatients(c *gin.Context) {
	patients, err := services.ListPatients(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patients)
}

func GetPatient(c *gin.Context) {
	p, err := services.GetPatient(c.GetUint("userID"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

func UpdatePatient(c *gin.Context) {
	var input services.PatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := services.UpdatePatient(c.GetUint("userID"), c.Param("id"), input)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrPatientNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

func DeletePatient(c *gin.Context) {
	if err := services.DeletePatient(c.GetUint("userID"), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "patient deleted"})
}

// GetPatientSchema returns the measurement-form schema resolved from
// the patient's current clinical flags.
func GetPatientSchema(c *gin.Context) {
	p, err := services.GetPatient(c.GetUint("userID"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, services.ResolvePatientSchema(p))
}
