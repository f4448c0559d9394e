package controller

import (
	"errors"

	"quiz_backend/internal/service"
	"quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnswerController struct {
	Service *service.AnswerService
}

func NewAnswerController(svc *service.AnswerService) *AnswerController {
	return &AnswerController{Service: svc}
}

// @Summary Record an answer
// @Tags Answers
// @Accept json
// @Produce json
// @Param body body service.AnswerReq true "answer payload"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /answers [post]
func (c *AnswerController) Create(ctx *gin.Context) {
	var req service.AnswerReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.UnprocessableEntity(ctx, err.Error())
		return
	}

	answer, err := c.Service.Create(req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSessionNotFound), errors.Is(err, util.ErrQuestionNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrAlreadyAnswered), errors.Is(err, util.ErrSelectedOptionRange):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, answer)
}

// @Summary List a session's answers
// @Tags Answers
// @Produce json
// @Param sessionId path int true "session id"
// @Success 200 {object} util.Response
// @Router /answers/session/{sessionId} [get]
func (c *AnswerController) ListBySession(ctx *gin.Context) {
	sessionID := util.MustParseUint(ctx.Param("sessionId"))

	answers, err := c.Service.ListBySession(sessionID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, answers)
}

// @Summary Get an answer by id
// @Tags Answers
// @Produce json
// @Param id path int true "answer id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /answers/{id} [get]
func (c *AnswerController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	answer, err := c.Service.Get(id)
	if err != nil {
		if errors.Is(err, util.ErrAnswerNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, answer)
}

// @Summary Correct an answer
// @Description Re-validates the selection against the current question
// and recomputes correctness.
// @Tags Answers
// @Accept json
// @Produce json
// @Param id path int true "answer id"
// @Param body body service.AnswerUpdateReq true "partial payload"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /answers/{id} [put]
func (c *AnswerController) Update(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req service.AnswerUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answer, err := c.Service.Update(id, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAnswerNotFound), errors.Is(err, util.ErrQuestionNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrSelectedOptionRange):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, answer)
}
