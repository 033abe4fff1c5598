// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tsukihub/tsukihub/internal/logging"
	"github.com/tsukihub/tsukihub/internal/recommend"
)

// RecommendForm is the AI recommendation form input. Both fields need
// enough text for the collaborator to work with.
type RecommendForm struct {
	Favorites   string `validate:"required,min=10"`
	Preferences string `validate:"required,min=10"`
}

// RecommendData is the body data of the recommendation page.
type RecommendData struct {
	Form   RecommendForm
	Errors map[string]string
	Result string
}

// recommendMeta is the shared head metadata of the recommendation pages.
func recommendMeta() Meta {
	return staticMeta("Recommendations", "Get personalized anime and manga recommendations.")
}

// handleRecommendForm renders the empty recommendation form. When the
// collaborator is not configured the page does not exist.
func (s *Server) handleRecommendForm(w http.ResponseWriter, r *http.Request) {
	if !s.cfg.Recommend.Enabled {
		s.renderNotFound(w, r, "Page")
		return
	}

	s.render(w, r, http.StatusOK, "recommend", Page{
		Meta:    recommendMeta(),
		Section: "recommendations",
		Data:    RecommendData{},
	})
}

// handleRecommendSubmit validates the form and forwards it to the
// collaborator. Validation failures re-render the form with the visitor's
// input preserved and per-field messages.
func (s *Server) handleRecommendSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.cfg.Recommend.Enabled {
		s.renderNotFound(w, r, "Page")
		return
	}

	if err := r.ParseForm(); err != nil {
		s.render(w, r, http.StatusBadRequest, "recommend", Page{
			Meta:    recommendMeta(),
			Section: "recommendations",
			Data:    RecommendData{Errors: map[string]string{"form": "Could not read the submitted form."}},
		})
		return
	}

	form := RecommendForm{
		Favorites:   strings.TrimSpace(r.PostFormValue("favorites")),
		Preferences: strings.TrimSpace(r.PostFormValue("preferences")),
	}

	if err := s.validate.Struct(form); err != nil {
		s.render(w, r, http.StatusUnprocessableEntity, "recommend", Page{
			Meta:    recommendMeta(),
			Section: "recommendations",
			Data:    RecommendData{Form: form, Errors: formErrors(err)},
		})
		return
	}

	result, err := s.completer.Complete(r.Context(), form.Favorites, form.Preferences)
	if err != nil {
		if errors.Is(err, recommend.ErrDisabled) {
			s.renderNotFound(w, r, "Page")
			return
		}
		logging.Ctx(r.Context()).Error().Err(err).Msg("Recommendation completion failed")
		s.render(w, r, http.StatusBadGateway, "recommend", Page{
			Meta:    recommendMeta(),
			Section: "recommendations",
			Data: RecommendData{
				Form:   form,
				Errors: map[string]string{"form": "The recommendation service is unavailable, try again later."},
			},
		})
		return
	}

	s.render(w, r, http.StatusOK, "recommend", Page{
		Meta:    recommendMeta(),
		Section: "recommendations",
		Data:    RecommendData{Form: form, Result: result},
	})
}

// formErrors converts validator errors into per-field messages.
func formErrors(err error) map[string]string {
	messages := make(map[string]string)

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		messages["form"] = "The submitted form is invalid."
		return messages
	}

	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required":
			messages[fieldErr.Field()] = "This field is required."
		case "min":
			messages[fieldErr.Field()] = "Please write at least 10 characters."
		default:
			messages[fieldErr.Field()] = "This field is invalid."
		}
	}
	return messages
}
