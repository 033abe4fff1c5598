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

// CharacterData is the body data of the character detail page.
type CharacterData struct {
	Character    jikan.Character
	Animeography []Card
	Mangaography []Card
	VoiceActors  []jikan.VoiceActor
}

// characterPrimary resolves the {id} parameter and fetches the character.
func (s *Server) characterPrimary(w http.ResponseWriter, r *http.Request) (jikan.Character, bool) {
	id, ok := parseID(r, "id")
	if !ok {
		s.renderNotFound(w, r, "Character")
		return jikan.Character{}, false
	}

	character, err := s.jikan.CharacterByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, jikan.ErrNotFound) {
			s.renderNotFound(w, r, "Character")
		} else {
			s.renderError(w, r, err)
		}
		return jikan.Character{}, false
	}
	return character, true
}

// handleCharacter renders the character detail page with appearances and
// voice credits fetched in parallel.
func (s *Server) handleCharacter(w http.ResponseWriter, r *http.Request) {
	character, ok := s.characterPrimary(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	var (
		animeApps []jikan.AnimeAppearance
		mangaApps []jikan.MangaAppearance
		voices    []jikan.VoiceActor
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(secondaryInto(gctx, "animeography", &animeApps, func() ([]jikan.AnimeAppearance, error) {
		return s.jikan.CharacterAnime(gctx, character.MalID)
	}))
	g.Go(secondaryInto(gctx, "mangaography", &mangaApps, func() ([]jikan.MangaAppearance, error) {
		return s.jikan.CharacterManga(gctx, character.MalID)
	}))
	g.Go(secondaryInto(gctx, "voices", &voices, func() ([]jikan.VoiceActor, error) {
		return s.jikan.CharacterVoices(gctx, character.MalID)
	}))
	_ = g.Wait()

	data := CharacterData{
		Character: character,
		Animeography: mapCards(animeApps, func(app jikan.AnimeAppearance) Card {
			return entryCard(app.Anime, "/anime", app.Role)
		}),
		Mangaography: mapCards(mangaApps, func(app jikan.MangaAppearance) Card {
			return entryCard(app.Manga, "/manga", app.Role)
		}),
		VoiceActors: voices,
	}

	s.render(w, r, http.StatusOK, "character", Page{
		Meta:    characterMeta(&character),
		Section: "characters",
		Data:    data,
	})
}

// handleCharacterAnime renders every anime a character appears in.
func (s *Server) handleCharacterAnime(w http.ResponseWriter, r *http.Request) {
	character, ok := s.characterPrimary(w, r)
	if !ok {
		return
	}

	apps := secondary(r.Context(), "animeography", func() ([]jikan.AnimeAppearance, error) {
		return s.jikan.CharacterAnime(r.Context(), character.MalID)
	})

	s.render(w, r, http.StatusOK, "subcards", Page{
		Meta:    staticMeta(character.Name+" Anime", "Anime featuring "+character.Name),
		Section: "characters",
		Data: SubPageData{
			ParentTitle: character.Name,
			ParentHref:  fmt.Sprintf("/characters/%d", character.MalID),
			Heading:     "Animeography",
			Body: mapCards(apps, func(app jikan.AnimeAppearance) Card {
				return entryCard(app.Anime, "/anime", app.Role)
			}),
		},
	})
}

// handleCharacterManga renders every manga a character appears in.
func (s *Server) handleCharacterManga(w http.ResponseWriter, r *http.Request) {
	character, ok := s.characterPrimary(w, r)
	if !ok {
		return
	}

	apps := secondary(r.Context(), "mangaography", func() ([]jikan.MangaAppearance, error) {
		return s.jikan.CharacterManga(r.Context(), character.MalID)
	})

	s.render(w, r, http.StatusOK, "subcards", Page{
		Meta:    staticMeta(character.Name+" Manga", "Manga featuring "+character.Name),
		Section: "characters",
		Data: SubPageData{
			ParentTitle: character.Name,
			ParentHref:  fmt.Sprintf("/characters/%d", character.MalID),
			Heading:     "Mangaography",
			Body: mapCards(apps, func(app jikan.MangaAppearance) Card {
				return entryCard(app.Manga, "/manga", app.Role)
			}),
		},
	})
}

// handleCharacterVoices renders the voice actors of a character.
func (s *Server) handleCharacterVoices(w http.ResponseWriter, r *http.Request) {
	character, ok := s.characterPrimary(w, r)
	if !ok {
		return
	}

	voices := secondary(r.Context(), "voices", func() ([]jikan.VoiceActor, error) {
		return s.jikan.CharacterVoices(r.Context(), character.MalID)
	})

	s.render(w, r, http.StatusOK, "subcards", Page{
		Meta:    staticMeta(character.Name+" Voice Actors", "Voice actors of "+character.Name),
		Section: "characters",
		Data: SubPageData{
			ParentTitle: character.Name,
			ParentHref:  fmt.Sprintf("/characters/%d", character.MalID),
			Heading:     "Voice Actors",
			Body: mapCards(voices, func(va jikan.VoiceActor) Card {
				return entryCard(va.Person, "/people", va.Language)
			}),
		},
	})
}

// handleCharacterPictures renders the picture gallery of a character.
func (s *Server) handleCharacterPictures(w http.ResponseWriter, r *http.Request) {
	character, ok := s.characterPrimary(w, r)
	if !ok {
		return
	}

	pictures := secondary(r.Context(), "pictures", func() ([]jikan.Picture, error) {
		return s.jikan.CharacterPictures(r.Context(), character.MalID)
	})

	s.render(w, r, http.StatusOK, "pictures", Page{
		Meta:    staticMeta(character.Name+" Pictures", "Picture gallery of "+character.Name),
		Section: "characters",
		Data: SubPageData{
			ParentTitle: character.Name,
			ParentHref:  fmt.Sprintf("/characters/%d", character.MalID),
			Body:        pictures,
		},
	})
}
