package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHealth reports liveness for load balancers and the frontend's
// service check.
func getHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
