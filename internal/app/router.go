package app

import (
	"net/http"

	"quiz_backend/docs"
	"quiz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	// 占位接口
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "Quiz API running"})
	})
	router.GET("/favicon.ico", func(ctx *gin.Context) {
		ctx.Status(http.StatusNoContent)
	})
	router.GET("/docs/session/:id", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusTemporaryRedirect, "/quiz-sessions/"+ctx.Param("id"))
	})

	questions := router.Group("/questions")
	{
		questions.POST("", c.question.Create)
		questions.POST("/bulk", c.question.CreateBulk)
		questions.GET("", c.question.List)
		questions.GET("/random", c.question.Random)
		questions.GET("/:id", c.question.Get)
		questions.PUT("/:id", c.question.Update)
		questions.DELETE("/:id", c.question.Delete)
	}

	sessions := router.Group("/quiz-sessions")
	{
		sessions.POST("", c.session.Create)
		sessions.GET("", c.session.List)
		sessions.GET("/:id", c.session.Get)
		sessions.PUT("/:id/complete", c.session.Complete)
		sessions.DELETE("/:id", c.session.Delete)
	}

	answers := router.Group("/answers")
	{
		answers.POST("", c.answer.Create)
		answers.GET("/session/:sessionId", c.answer.ListBySession)
		answers.GET("/:id", c.answer.Get)
		answers.PUT("/:id", c.answer.Update)
	}

	statistics := router.Group("/statistics")
	{
		statistics.GET("/global", c.statistics.Global)
		statistics.GET("/session/:id", c.statistics.Session)
		statistics.GET("/questions/difficult", c.statistics.DifficultQuestions)
		statistics.GET("/categories", c.statistics.Categories)
	}
}
