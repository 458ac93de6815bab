package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/rencanalab/rpm-backend/internal/domain"
	"github.com/rencanalab/rpm-backend/internal/form"
	"github.com/rencanalab/rpm-backend/internal/http/middleware"
	"github.com/rencanalab/rpm-backend/internal/http/response"
	"github.com/rencanalab/rpm-backend/internal/platform/logger"
	"github.com/rencanalab/rpm-backend/internal/rpm/render"
)

// FormHandler exposes one draft session per authenticated teacher.
type FormHandler struct {
	log      *logger.Logger
	store    *form.Store
	gen      form.Generator
	validate *validator.Validate
}

func NewFormHandler(log *logger.Logger, store *form.Store, gen form.Generator, validate *validator.Validate) *FormHandler {
	return &FormHandler{
		log:      log.With("Handler", "FormHandler"),
		store:    store,
		gen:      gen,
		validate: validate,
	}
}

func (fh *FormHandler) session(c *gin.Context) *form.Session {
	principal := middleware.GetPrincipal(c)
	return fh.store.GetOrCreate(principal.Username, time.Now())
}

func (fh *FormHandler) GetState(c *gin.Context) {
	response.RespondOK(c, fh.session(c).Snapshot())
}

// ReplaceInput swaps the whole draft in one shot, for clients that edit
// locally and sync the complete input.
func (fh *FormHandler) ReplaceInput(c *gin.Context) {
	var input domain.RPMInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := fh.validate.Struct(input); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}
	sess := fh.session(c)
	sess.Replace(input)
	response.RespondOK(c, sess.Snapshot())
}

func (fh *FormHandler) SetField(c *gin.Context) {
	var req struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := fh.session(c).SetField(req.Name, req.Value); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_field", err)
		return
	}
	response.RespondOK(c, fh.session(c).Snapshot())
}

func (fh *FormHandler) SetSessionCount(c *gin.Context) {
	var req struct {
		Count int `json:"count"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	input := fh.session(c).SetSessionCount(req.Count)
	response.RespondOK(c, gin.H{"input": input})
}

func (fh *FormHandler) SetPedagogy(c *gin.Context) {
	meetingNumber, err := strconv.Atoi(c.Param("n"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var req struct {
		Pedagogy string `json:"pedagogy"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := fh.session(c).SetMeetingPedagogy(meetingNumber, req.Pedagogy); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_field", err)
		return
	}
	response.RespondOK(c, fh.session(c).Snapshot())
}

func (fh *FormHandler) ToggleDimension(c *gin.Context) {
	var req struct {
		Dimension string `json:"dimension"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := fh.session(c).ToggleDimension(req.Dimension); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_field", err)
		return
	}
	response.RespondOK(c, fh.session(c).Snapshot())
}

func (fh *FormHandler) Submit(c *gin.Context) {
	sess := fh.session(c)
	full, err := sess.Submit(c.Request.Context(), fh.gen)
	if err != nil {
		if errors.Is(err, form.ErrSubmissionInFlight) {
			response.RespondError(c, http.StatusConflict, "generation_in_flight", err)
			return
		}
		fh.log.Error("Generation failed", "error", err.Error())
		response.RespondError(c, http.StatusBadGateway, "generation_failed",
			errors.New(form.GenerationFailedMessage))
		return
	}
	response.RespondOK(c, full)
}

func (fh *FormHandler) Result(c *gin.Context) {
	full, ok := fh.session(c).Result()
	if !ok {
		response.RespondError(c, http.StatusNotFound, "no_result",
			errors.New("no generated plan available"))
		return
	}
	response.RespondOK(c, full)
}

func (fh *FormHandler) ResultHTML(c *gin.Context) {
	full, ok := fh.session(c).Result()
	if !ok {
		response.RespondError(c, http.StatusNotFound, "no_result",
			errors.New("no generated plan available"))
		return
	}
	html, err := render.Render(full)
	if err != nil {
		fh.log.Error("Render failed", "error", err.Error())
		response.RespondError(c, http.StatusInternalServerError, "render_failed", err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
