// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tsukihub/tsukihub/internal/jikan"
)

// ClubData is the body data of the club detail page.
type ClubData struct {
	Club      jikan.Club
	Relations jikan.ClubRelations
}

// clubPrimary resolves the {id} parameter and fetches the club record.
func (s *Server) clubPrimary(w http.ResponseWriter, r *http.Request) (jikan.Club, bool) {
	id, ok := parseID(r, "id")
	if !ok {
		s.renderNotFound(w, r, "Club")
		return jikan.Club{}, false
	}

	club, err := s.jikan.ClubByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, jikan.ErrNotFound) {
			s.renderNotFound(w, r, "Club")
		} else {
			s.renderError(w, r, err)
		}
		return jikan.Club{}, false
	}
	return club, true
}

// handleClub renders the club detail page.
func (s *Server) handleClub(w http.ResponseWriter, r *http.Request) {
	club, ok := s.clubPrimary(w, r)
	if !ok {
		return
	}

	relations := secondary(r.Context(), "relations", func() (jikan.ClubRelations, error) {
		return s.jikan.ClubRelations(r.Context(), club.MalID)
	})

	s.render(w, r, http.StatusOK, "club", Page{
		Meta:    clubMeta(&club),
		Section: "clubs",
		Data:    ClubData{Club: club, Relations: relations},
	})
}

// handleClubMembers renders one page of a club's member listing. Clubs run
// to hundreds of member pages, so the pager slides around the current page
// instead of always starting at 1.
func (s *Server) handleClubMembers(w http.ResponseWriter, r *http.Request) {
	club, ok := s.clubPrimary(w, r)
	if !ok {
		return
	}
	page := parsePage(r)

	members := secondary(r.Context(), "members", func() (jikan.List[jikan.ClubMember], error) {
		return s.jikan.ClubMembers(r.Context(), club.MalID, page)
	})

	pager := slidingPager(members.Pagination, fmt.Sprintf("/clubs/%d/members?", club.MalID))
	s.render(w, r, http.StatusOK, "members", Page{
		Meta:    staticMeta(club.Name+" Members", "Members of "+club.Name),
		Section: "clubs",
		Data: SubPageData{
			ParentTitle: club.Name,
			ParentHref:  fmt.Sprintf("/clubs/%d", club.MalID),
			Body:        members.Items,
			Pager:       &pager,
		},
	})
}
