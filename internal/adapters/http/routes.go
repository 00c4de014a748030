package http

import (
	"supertag/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func RegisterRoutes(r *gin.Engine, analysisSvc ports.AnalysisService) {

	h := NewHandler(analysisSvc)

	api := r.Group("/api/v1")
	{
		devicesGroup := api.Group("/devices")
		{
			devicesGroup.POST("/:device_id/events", h.PostEvents)
			devicesGroup.GET("/:device_id/parameters", h.GetParameters)
			devicesGroup.GET("/:device_id/parameters/:parameter_id/durations", h.GetParameterDurations)
			devicesGroup.GET("/:device_id/durations", h.GetDurations)
		}
		analysisGroup := api.Group("/analysis")
		{
			analysisGroup.POST("/parameters", h.PostBatchParameters)
			analysisGroup.POST("/durations", h.PostBatchDurations)
		}
	}
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
