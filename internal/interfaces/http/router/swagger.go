package router

import (
	"github.com/gin-gonic/gin"
	"github.com/precast-erp/backend/internal/infrastructure/config"
	"github.com/precast-erp/backend/internal/interfaces/http/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// MountSwagger serves the generated API documentation under /swagger.
// The docs package must be imported by the binary for doc.json to resolve.
func MountSwagger(engine *gin.Engine, cfg config.SwaggerConfig, auth gin.HandlerFunc) {
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(cfg, auth),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)
}
