package controller

import (
	"errors"

	"quiz_backend/internal/service"
	"quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StatisticsController struct {
	Service *service.StatisticsService
}

func NewStatisticsController(svc *service.StatisticsService) *StatisticsController {
	return &StatisticsController{Service: svc}
}

// @Summary Global statistics
// @Tags Statistics
// @Produce json
// @Success 200 {object} util.Response
// @Router /statistics/global [get]
func (c *StatisticsController) Global(ctx *gin.Context) {
	stats, err := c.Service.Global()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}

// @Summary Per-session statistics
// @Tags Statistics
// @Produce json
// @Param id path int true "session id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /statistics/session/{id} [get]
func (c *StatisticsController) Session(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	stats, err := c.Service.Session(id)
	if err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}

// @Summary Questions ranked by error rate
// @Tags Statistics
// @Produce json
// @Success 200 {object} util.Response
// @Router /statistics/questions/difficult [get]
func (c *StatisticsController) DifficultQuestions(ctx *gin.Context) {
	ranking, err := c.Service.DifficultQuestions()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, ranking)
}

// @Summary Per-category accuracy
// @Description Categories without recorded answers are reported with a
// null accuracy.
// @Tags Statistics
// @Produce json
// @Success 200 {object} util.Response
// @Router /statistics/categories [get]
func (c *StatisticsController) Categories(ctx *gin.Context) {
	accuracy, err := c.Service.Categories()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, accuracy)
}
