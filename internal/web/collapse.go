// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

package web

import (
	"context"

	"github.com/tsukihub/tsukihub/internal/logging"
)

// secondary runs a fetch whose failure must not break the page. On error the
// zero value is returned and a warning is logged; the template renders the
// section empty. Errors never propagate past this point.
func secondary[T any](ctx context.Context, name string, fetch func() (T, error)) T {
	value, err := fetch()
	if err != nil {
		logging.Ctx(ctx).Warn().
			Err(err).
			Str("section", name).
			Msg("Secondary fetch failed, rendering section empty")
		var zero T
		return zero
	}
	return value
}

// secondaryInto is the errgroup-friendly variant of secondary: it stores the
// result through the pointer and always returns nil so one failed section
// never cancels its siblings.
func secondaryInto[T any](ctx context.Context, name string, dst *T, fetch func() (T, error)) func() error {
	return func() error {
		*dst = secondary(ctx, name, fetch)
		return nil
	}
}
