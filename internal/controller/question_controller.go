package controller

import (
	"errors"

	"quiz_backend/internal/service"
	"quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(svc *service.QuestionService) *QuestionController {
	return &QuestionController{Service: svc}
}

func isQuestionValidationErr(err error) bool {
	return errors.Is(err, util.ErrInvalidOptionCount) ||
		errors.Is(err, util.ErrCorrectOptionRange) ||
		errors.Is(err, util.ErrInvalidCategory) ||
		errors.Is(err, util.ErrInvalidDifficulty)
}

// @Summary Create a question
// @Tags Questions
// @Accept json
// @Produce json
// @Param body body service.QuestionReq true "question payload"
// @Success 201 {object} util.Response
// @Failure 422 {object} util.Response
// @Router /questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var req service.QuestionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.UnprocessableEntity(ctx, err.Error())
		return
	}

	question, err := c.Service.Create(req)
	if err != nil {
		if isQuestionValidationErr(err) {
			util.UnprocessableEntity(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, question)
}

// @Summary Create questions in bulk
// @Tags Questions
// @Accept json
// @Produce json
// @Param body body []service.QuestionReq true "question payloads"
// @Success 201 {object} util.Response
// @Failure 422 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /questions/bulk [post]
func (c *QuestionController) CreateBulk(ctx *gin.Context) {
	var reqs []service.QuestionReq
	if err := ctx.ShouldBindJSON(&reqs); err != nil {
		util.UnprocessableEntity(ctx, err.Error())
		return
	}

	questions, err := c.Service.CreateBulk(reqs)
	if err != nil {
		var itemErr *service.BulkItemError
		if errors.As(err, &itemErr) {
			util.UnprocessableEntity(ctx, itemErr.Error())
			return
		}
		// storage failure after validation: whole batch rolled back
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, questions)
}

// @Summary List active questions
// @Tags Questions
// @Produce json
// @Param category query string false "exact category filter"
// @Param difficulty query string false "exact difficulty filter"
// @Param skip query int false "offset" default(0)
// @Param limit query int false "page size" default(50)
// @Success 200 {object} util.Response
// @Router /questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	category := ctx.Query("category")
	difficulty := ctx.Query("difficulty")
	skip := util.QueryInt(ctx, "skip", 0)
	limit := util.QueryInt(ctx, "limit", 50)

	questions, err := c.Service.List(category, difficulty, skip, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, questions)
}

// @Summary Draw random active questions
// @Tags Questions
// @Produce json
// @Param limit query int false "sample size, capped at the active pool" default(10)
// @Success 200 {object} util.Response
// @Router /questions/random [get]
func (c *QuestionController) Random(ctx *gin.Context) {
	limit := util.QueryInt(ctx, "limit", 10)

	questions, err := c.Service.Random(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, questions)
}

// @Summary Get a question by id
// @Tags Questions
// @Produce json
// @Param id path int true "question id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /questions/{id} [get]
func (c *QuestionController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	question, err := c.Service.Get(id)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, question)
}

// @Summary Update a question
// @Tags Questions
// @Accept json
// @Produce json
// @Param id path int true "question id"
// @Param body body service.QuestionUpdateReq true "partial payload"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req service.QuestionUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.Service.Update(id, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuestionNotFound):
			util.NotFound(ctx, err.Error())
		case isQuestionValidationErr(err):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, question)
}

// @Summary Deactivate a question
// @Tags Questions
// @Produce json
// @Param id path int true "question id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	if _, err := c.Service.Deactivate(id); err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "question deactivated"})
}
