package controller

import (
	"errors"

	"quiz_backend/internal/service"
	"quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizSessionController struct {
	Service *service.QuizSessionService
}

func NewQuizSessionController(svc *service.QuizSessionService) *QuizSessionController {
	return &QuizSessionController{Service: svc}
}

// @Summary Start a quiz session
// @Tags Quiz Sessions
// @Accept json
// @Produce json
// @Param body body service.QuizSessionReq true "session payload"
// @Success 201 {object} util.Response
// @Router /quiz-sessions [post]
func (c *QuizSessionController) Create(ctx *gin.Context) {
	var req service.QuizSessionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.UnprocessableEntity(ctx, err.Error())
		return
	}

	session, err := c.Service.Create(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, session)
}

// @Summary List quiz sessions
// @Tags Quiz Sessions
// @Produce json
// @Param skip query int false "offset" default(0)
// @Param limit query int false "page size" default(50)
// @Success 200 {object} util.Response
// @Router /quiz-sessions [get]
func (c *QuizSessionController) List(ctx *gin.Context) {
	skip := util.QueryInt(ctx, "skip", 0)
	limit := util.QueryInt(ctx, "limit", 50)

	sessions, err := c.Service.List(skip, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, sessions)
}

// @Summary Get a quiz session by id
// @Tags Quiz Sessions
// @Produce json
// @Param id path int true "session id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /quiz-sessions/{id} [get]
func (c *QuizSessionController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	session, err := c.Service.Get(id)
	if err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, session)
}

// @Summary Complete a quiz session
// @Description One-way in_progress → completed transition; computes the
// final score from the session's answers.
// @Tags Quiz Sessions
// @Produce json
// @Param id path int true "session id"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /quiz-sessions/{id}/complete [put]
func (c *QuizSessionController) Complete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	session, err := c.Service.Complete(id)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSessionNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrSessionNotInProgress):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, session)
}

// @Summary Delete a quiz session
// @Description Hard delete; the session's answers are removed with it.
// @Tags Quiz Sessions
// @Produce json
// @Param id path int true "session id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /quiz-sessions/{id} [delete]
func (c *QuizSessionController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	if err := c.Service.Delete(id); err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "session deleted"})
}
