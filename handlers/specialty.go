// File: handlers/specialty.go
package handlers

import (
	"net/http"

	"medibook/models"

	"github.com/gin-gonic/gin"
)

// specialtyCatalogue is the static picker list shown on the booking screen.
var specialtyCatalogue = []models.Specialty{
	{ID: "cardiology", Name: "Cardiology", Icon: "heart"},
	{ID: "dermatology", Name: "Dermatology", Icon: "shield"},
	{ID: "general", Name: "General Medicine", Icon: "stethoscope"},
	{ID: "neurology", Name: "Neurology", Icon: "brain"},
	{ID: "orthopedics", Name: "Orthopedics", Icon: "bone"},
	{ID: "pediatrics", Name: "Pediatrics", Icon: "baby"},
	{ID: "psychiatry", Name: "Psychiatry", Icon: "mind"},
	{ID: "ophthalmology", Name: "Ophthalmology", Icon: "eye"},
	{ID: "dentistry", Name: "Dentistry", Icon: "tooth"},
	{ID: "gynecology", Name: "Gynecology", Icon: "female"},
}

// ListSpecialtiesHandler returns the specialty catalogue.
func ListSpecialtiesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, specialtyCatalogue)
}
