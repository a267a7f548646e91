package handlers

import (
	"net/http"

	"pm-assistant/internal/settings"

	"github.com/gin-gonic/gin"
)

func GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, settingsStore.Get())
}

func SaveSettings(c *gin.Context) {
	var patch settings.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	settingsStore.Update(patch)
	c.JSON(http.StatusOK, gin.H{"message": "Settings saved successfully"})
}
