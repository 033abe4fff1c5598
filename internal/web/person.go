// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

package web

import (
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/tsukihub/tsukihub/internal/jikan"
)

// PersonData is the body data of the person detail page.
type PersonData struct {
	Person       jikan.Person
	AnimeCredits []jikan.PersonAnimeCredit
	MangaCredits []jikan.PersonMangaCredit
	VoiceCredits []jikan.PersonVoiceCredit
}

// personPrimary resolves the {id} parameter and fetches the person record.
func (s *Server) personPrimary(w http.ResponseWriter, r *http.Request) (jikan.Person, bool) {
	id, ok := parseID(r, "id")
	if !ok {
		s.renderNotFound(w, r, "Person")
		return jikan.Person{}, false
	}

	person, err := s.jikan.PersonByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, jikan.ErrNotFound) {
			s.renderNotFound(w, r, "Person")
		} else {
			s.renderError(w, r, err)
		}
		return jikan.Person{}, false
	}
	return person, true
}

// handlePerson renders the person detail page with all credit listings
// fetched in parallel.
func (s *Server) handlePerson(w http.ResponseWriter, r *http.Request) {
	person, ok := s.personPrimary(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	var data PersonData
	data.Person = person

	g, gctx := errgroup.WithContext(ctx)
	g.Go(secondaryInto(gctx, "anime credits", &data.AnimeCredits, func() ([]jikan.PersonAnimeCredit, error) {
		return s.jikan.PersonAnime(gctx, person.MalID)
	}))
	g.Go(secondaryInto(gctx, "manga credits", &data.MangaCredits, func() ([]jikan.PersonMangaCredit, error) {
		return s.jikan.PersonManga(gctx, person.MalID)
	}))
	g.Go(secondaryInto(gctx, "voice credits", &data.VoiceCredits, func() ([]jikan.PersonVoiceCredit, error) {
		return s.jikan.PersonVoices(gctx, person.MalID)
	}))
	_ = g.Wait()

	s.render(w, r, http.StatusOK, "person", Page{
		Meta:    personMeta(&person),
		Section: "people",
		Data:    data,
	})
}

// handlePersonAnime renders the anime production credits of a person.
func (s *Server) handlePersonAnime(w http.ResponseWriter, r *http.Request) {
	person, ok := s.personPrimary(w, r)
	if !ok {
		return
	}

	credits := secondary(r.Context(), "anime credits", func() ([]jikan.PersonAnimeCredit, error) {
		return s.jikan.PersonAnime(r.Context(), person.MalID)
	})

	s.render(w, r, http.StatusOK, "subcards", Page{
		Meta:    staticMeta(person.Name+" Anime", "Anime credits of "+person.Name),
		Section: "people",
		Data: SubPageData{
			ParentTitle: person.Name,
			ParentHref:  fmt.Sprintf("/people/%d", person.MalID),
			Heading:     "Anime Credits",
			Body: mapCards(credits, func(c jikan.PersonAnimeCredit) Card {
				return entryCard(c.Anime, "/anime", c.Position)
			}),
		},
	})
}

// handlePersonManga renders the manga authorship credits of a person.
func (s *Server) handlePersonManga(w http.ResponseWriter, r *http.Request) {
	person, ok := s.personPrimary(w, r)
	if !ok {
		return
	}

	credits := secondary(r.Context(), "manga credits", func() ([]jikan.PersonMangaCredit, error) {
		return s.jikan.PersonManga(r.Context(), person.MalID)
	})

	s.render(w, r, http.StatusOK, "subcards", Page{
		Meta:    staticMeta(person.Name+" Manga", "Manga credits of "+person.Name),
		Section: "people",
		Data: SubPageData{
			ParentTitle: person.Name,
			ParentHref:  fmt.Sprintf("/people/%d", person.MalID),
			Heading:     "Manga Credits",
			Body: mapCards(credits, func(c jikan.PersonMangaCredit) Card {
				return entryCard(c.Manga, "/manga", c.Position)
			}),
		},
	})
}

// handlePersonVoices renders the voice-acting credits of a person.
func (s *Server) handlePersonVoices(w http.ResponseWriter, r *http.Request) {
	person, ok := s.personPrimary(w, r)
	if !ok {
		return
	}

	credits := secondary(r.Context(), "voice credits", func() ([]jikan.PersonVoiceCredit, error) {
		return s.jikan.PersonVoices(r.Context(), person.MalID)
	})

	s.render(w, r, http.StatusOK, "subcards", Page{
		Meta:    staticMeta(person.Name+" Voice Roles", "Voice-acting credits of "+person.Name),
		Section: "people",
		Data: SubPageData{
			ParentTitle: person.Name,
			ParentHref:  fmt.Sprintf("/people/%d", person.MalID),
			Heading:     "Voice Roles",
			Body: mapCards(credits, func(c jikan.PersonVoiceCredit) Card {
				return entryCard(c.Character, "/characters", c.Role+" in "+c.Anime.DisplayTitle())
			}),
		},
	})
}

// handlePersonPictures renders the picture gallery of a person.
func (s *Server) handlePersonPictures(w http.ResponseWriter, r *http.Request) {
	person, ok := s.personPrimary(w, r)
	if !ok {
		return
	}

	pictures := secondary(r.Context(), "pictures", func() ([]jikan.Picture, error) {
		return s.jikan.PersonPictures(r.Context(), person.MalID)
	})

	s.render(w, r, http.StatusOK, "pictures", Page{
		Meta:    staticMeta(person.Name+" Pictures", "Picture gallery of "+person.Name),
		Section: "people",
		Data: SubPageData{
			ParentTitle: person.Name,
			ParentHref:  fmt.Sprintf("/people/%d", person.MalID),
			Body:        pictures,
		},
	})
}
