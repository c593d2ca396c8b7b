package handlers

import (
	portssvc "github.com/findash/findash_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	r.GET("/health", getHealth)

	registerAccountRoutes(r, services.Account, services.Reporting)
	registerTransactionRoutes(r, services.Ledger, services.Reporting)
}
