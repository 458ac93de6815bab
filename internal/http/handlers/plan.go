package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/rencanalab/rpm-backend/internal/domain"
	"github.com/rencanalab/rpm-backend/internal/form"
	"github.com/rencanalab/rpm-backend/internal/http/response"
	"github.com/rencanalab/rpm-backend/internal/platform/logger"
	"github.com/rencanalab/rpm-backend/internal/rpm/render"
)

// PlanHandler is the stateless generation surface: the caller ships a
// complete input and gets the merged plan back, no server-side draft involved.
type PlanHandler struct {
	log      *logger.Logger
	gen      form.Generator
	validate *validator.Validate
}

func NewPlanHandler(log *logger.Logger, gen form.Generator, validate *validator.Validate) *PlanHandler {
	return &PlanHandler{log: log.With("Handler", "PlanHandler"), gen: gen, validate: validate}
}

func (ph *PlanHandler) Generate(c *gin.Context) {
	var input domain.RPMInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ph.validate.Struct(input); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_input", err)
		return
	}

	out, err := ph.gen.Generate(c.Request.Context(), input)
	if err != nil {
		ph.log.Error("Generation failed", "error", err.Error())
		response.RespondError(c, http.StatusBadGateway, "generation_failed",
			errors.New(form.GenerationFailedMessage))
		return
	}

	full := domain.FullRPMData{RPMInput: input, RPMGeneratedOutput: out}
	if c.Query("format") == "html" {
		html, err := render.Render(full)
		if err != nil {
			ph.log.Error("Render failed", "error", err.Error())
			response.RespondError(c, http.StatusInternalServerError, "render_failed", err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
		return
	}
	response.RespondOK(c, full)
}
