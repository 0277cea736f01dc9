// File: cerberus/handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Contact endpoints
	SubmitContact  gin.HandlerFunc
	ContactLimiter gin.HandlerFunc

	// Estimator endpoints
	GetCatalog      gin.HandlerFunc
	ComputeEstimate gin.HandlerFunc
	SelectPostOnly  gin.HandlerFunc
	EstimateSummary gin.HandlerFunc
}
