// Tsukihub - Server-Rendered Anime & Manga Metadata Browser
// Copyright 2026 Tsukihub Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tsukihub/tsukihub

package jikan

// Pagination is the pagination block returned alongside every list response.
// has_next_page is honored as reported by the upstream API, never recomputed.
type Pagination struct {
	CurrentPage     int             `json:"current_page"`
	LastVisiblePage int             `json:"last_visible_page"`
	HasNextPage     bool            `json:"has_next_page"`
	Items           PaginationItems `json:"items"`
}

// PaginationItems carries the item counts of a paginated response.
type PaginationItems struct {
	Count   int `json:"count"`
	Total   int `json:"total"`
	PerPage int `json:"per_page"`
}

// List wraps a page of entities together with its pagination metadata.
type List[T any] struct {
	Items      []T
	Pagination Pagination
}

// ImageSet holds the URL variants of one image format.
type ImageSet struct {
	ImageURL      string `json:"image_url"`
	SmallImageURL string `json:"small_image_url"`
	LargeImageURL string `json:"large_image_url"`
}

// Images holds the per-format image sets attached to an entity.
type Images struct {
	JPG  ImageSet `json:"jpg"`
	WebP ImageSet `json:"webp"`
}

// MalItem is the lightweight entity reference used for genres, themes,
// demographics, studios, producers and relation entries: id, type, name, url
// only, no images or metrics.
type MalItem struct {
	MalID int    `json:"mal_id"`
	Type  string `json:"type"`
	Name  string `json:"name"`
	URL   string `json:"url"`
}

// Entry is the slim entity reference carried by recommendations, relations
// in card form, and similar cross-links that do include images.
type Entry struct {
	MalID  int    `json:"mal_id"`
	URL    string `json:"url"`
	Images Images `json:"images"`
	Title  string `json:"title"`
	Name   string `json:"name"`
}

// DisplayTitle returns the entry's title for media entries or its name for
// character/person entries, whichever is set.
func (e Entry) DisplayTitle() string {
	if e.Title != "" {
		return e.Title
	}
	return e.Name
}

// Aired is the airing/publishing date range of a media entity.
type Aired struct {
	From   string `json:"from"`
	To     string `json:"to"`
	String string `json:"string"`
}

// Trailer is the promotional video block of an anime.
type Trailer struct {
	YoutubeID string `json:"youtube_id"`
	URL       string `json:"url"`
	EmbedURL  string `json:"embed_url"`
}

// Anime is the full anime record. Optional numeric metrics are pointers so
// that absent values stay distinguishable from zero.
type Anime struct {
	MalID         int      `json:"mal_id"`
	URL           string   `json:"url"`
	Images        Images   `json:"images"`
	Trailer       Trailer  `json:"trailer"`
	Title         string   `json:"title"`
	TitleEnglish  string   `json:"title_english"`
	TitleJapanese string   `json:"title_japanese"`
	Type          string   `json:"type"`
	Source        string   `json:"source"`
	Episodes      *int     `json:"episodes"`
	Status        string   `json:"status"`
	Airing        bool     `json:"airing"`
	Aired         Aired    `json:"aired"`
	Duration      string   `json:"duration"`
	Rating        string   `json:"rating"`
	Score         *float64 `json:"score"`
	ScoredBy      *int     `json:"scored_by"`
	Rank          *int     `json:"rank"`
	Popularity    *int     `json:"popularity"`
	Members       *int     `json:"members"`
	Favorites     *int     `json:"favorites"`
	Synopsis      string   `json:"synopsis"`
	Background    string   `json:"background"`
	Season        string   `json:"season"`
	Year          int      `json:"year"`

	Producers    []MalItem `json:"producers"`
	Licensors    []MalItem `json:"licensors"`
	Studios      []MalItem `json:"studios"`
	Genres       []MalItem `json:"genres"`
	Themes       []MalItem `json:"themes"`
	Demographics []MalItem `json:"demographics"`

	// Populated only by the /full endpoint.
	Relations []Relation `json:"relations"`
	Theme     ThemeSongs `json:"theme"`
	External  []Link     `json:"external"`
	Streaming []Link     `json:"streaming"`
}

// Manga is the full manga record, mirroring Anime for printed media.
type Manga struct {
	MalID         int      `json:"mal_id"`
	URL           string   `json:"url"`
	Images        Images   `json:"images"`
	Title         string   `json:"title"`
	TitleEnglish  string   `json:"title_english"`
	TitleJapanese string   `json:"title_japanese"`
	Type          string   `json:"type"`
	Chapters      *int     `json:"chapters"`
	Volumes       *int     `json:"volumes"`
	Status        string   `json:"status"`
	Publishing    bool     `json:"publishing"`
	Published     Aired    `json:"published"`
	Score         *float64 `json:"score"`
	ScoredBy      *int     `json:"scored_by"`
	Rank          *int     `json:"rank"`
	Popularity    *int     `json:"popularity"`
	Members       *int     `json:"members"`
	Favorites     *int     `json:"favorites"`
	Synopsis      string   `json:"synopsis"`
	Background    string   `json:"background"`

	Authors        []MalItem `json:"authors"`
	Serializations []MalItem `json:"serializations"`
	Genres         []MalItem `json:"genres"`
	Themes         []MalItem `json:"themes"`
	Demographics   []MalItem `json:"demographics"`

	// Populated only by the /full endpoint.
	Relations []Relation `json:"relations"`
	External  []Link     `json:"external"`
}

// Character is the full character record.
type Character struct {
	MalID     int      `json:"mal_id"`
	URL       string   `json:"url"`
	Images    Images   `json:"images"`
	Name      string   `json:"name"`
	NameKanji string   `json:"name_kanji"`
	Nicknames []string `json:"nicknames"`
	Favorites *int     `json:"favorites"`
	About     string   `json:"about"`
}

// Person is the full person (staff / voice actor) record.
type Person struct {
	MalID          int      `json:"mal_id"`
	URL            string   `json:"url"`
	WebsiteURL     string   `json:"website_url"`
	Images         Images   `json:"images"`
	Name           string   `json:"name"`
	GivenName      string   `json:"given_name"`
	FamilyName     string   `json:"family_name"`
	AlternateNames []string `json:"alternate_names"`
	Birthday       string   `json:"birthday"`
	Favorites      *int     `json:"favorites"`
	About          string   `json:"about"`
}

// Club is the full club record.
type Club struct {
	MalID    int    `json:"mal_id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Images   Images `json:"images"`
	Members  int    `json:"members"`
	Category string `json:"category"`
	Created  string `json:"created"`
	Access   string `json:"access"`
}

// Genre is one entry of the genre taxonomy listings.
type Genre struct {
	MalID int    `json:"mal_id"`
	Name  string `json:"name"`
	URL   string `json:"url"`
	Count int    `json:"count"`
}

// Episode is one row of an anime's episode listing.
type Episode struct {
	MalID         int      `json:"mal_id"`
	URL           string   `json:"url"`
	Title         string   `json:"title"`
	TitleJapanese string   `json:"title_japanese"`
	TitleRomanji  string   `json:"title_romanji"`
	Aired         string   `json:"aired"`
	Score         *float64 `json:"score"`
	Filler        bool     `json:"filler"`
	Recap         bool     `json:"recap"`
}

// EpisodeDetail is the single-episode record with synopsis.
type EpisodeDetail struct {
	MalID    int    `json:"mal_id"`
	URL      string `json:"url"`
	Title    string `json:"title"`
	Duration int    `json:"duration"`
	Aired    string `json:"aired"`
	Filler   bool   `json:"filler"`
	Recap    bool   `json:"recap"`
	Synopsis string `json:"synopsis"`
}

// ReviewUser identifies the author of a review.
type ReviewUser struct {
	Username string `json:"username"`
	URL      string `json:"url"`
	Images   Images `json:"images"`
}

// Review is one user review of an anime or manga.
type Review struct {
	MalID         int        `json:"mal_id"`
	URL           string     `json:"url"`
	Type          string     `json:"type"`
	Date          string     `json:"date"`
	Review        string     `json:"review"`
	Score         int        `json:"score"`
	Tags          []string   `json:"tags"`
	IsSpoiler     bool       `json:"is_spoiler"`
	IsPreliminary bool       `json:"is_preliminary"`
	User          ReviewUser `json:"user"`
}

// News is one news article attached to an entity.
type News struct {
	MalID          int    `json:"mal_id"`
	URL            string `json:"url"`
	Title          string `json:"title"`
	Date           string `json:"date"`
	AuthorUsername string `json:"author_username"`
	ForumURL       string `json:"forum_url"`
	Images         Images `json:"images"`
	Comments       int    `json:"comments"`
	Excerpt        string `json:"excerpt"`
}

// ForumTopic is one forum discussion row.
type ForumTopic struct {
	MalID          int    `json:"mal_id"`
	URL            string `json:"url"`
	Title          string `json:"title"`
	Date           string `json:"date"`
	AuthorUsername string `json:"author_username"`
	Comments       int    `json:"comments"`
}

// PromoVideo is one promotional video of an anime.
type PromoVideo struct {
	Title   string  `json:"title"`
	Trailer Trailer `json:"trailer"`
}

// VideoEpisode is one episode video row.
type VideoEpisode struct {
	MalID   int    `json:"mal_id"`
	URL     string `json:"url"`
	Title   string `json:"title"`
	Episode string `json:"episode"`
	Images  Images `json:"images"`
}

// MusicVideo is one music video row.
type MusicVideo struct {
	Title string  `json:"title"`
	Video Trailer `json:"video"`
	Meta  struct {
		Title  string `json:"title"`
		Author string `json:"author"`
	} `json:"meta"`
}

// Videos groups the video sub-resources of an anime.
type Videos struct {
	Promo       []PromoVideo   `json:"promo"`
	Episodes    []VideoEpisode `json:"episodes"`
	MusicVideos []MusicVideo   `json:"music_videos"`
}

// ScoreStat is one score bucket of the statistics block.
type ScoreStat struct {
	Score      int     `json:"score"`
	Votes      int     `json:"votes"`
	Percentage float64 `json:"percentage"`
}

// Statistics is the viewing/reading statistics block of a media entity.
// Watching/PlanToWatch are used by anime, Reading/PlanToRead by manga.
type Statistics struct {
	Watching    int         `json:"watching"`
	Reading     int         `json:"reading"`
	Completed   int         `json:"completed"`
	OnHold      int         `json:"on_hold"`
	Dropped     int         `json:"dropped"`
	PlanToWatch int         `json:"plan_to_watch"`
	PlanToRead  int         `json:"plan_to_read"`
	Total       int         `json:"total"`
	Scores      []ScoreStat `json:"scores"`
}

// Recommendation is one "users also liked" entry.
type Recommendation struct {
	Entry Entry  `json:"entry"`
	URL   string `json:"url"`
	Votes int    `json:"votes"`
}

// Relation is a named relationship ("Sequel", "Adaptation", ...) to a list
// of lightweight entity references.
type Relation struct {
	Relation string    `json:"relation"`
	Entry    []MalItem `json:"entry"`
}

// ThemeSongs lists the opening and ending themes of an anime.
type ThemeSongs struct {
	Openings []string `json:"openings"`
	Endings  []string `json:"endings"`
}

// Link is a named external or streaming link.
type Link struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// VoiceActor is one voice credit: the person plus the dub language.
type VoiceActor struct {
	Person   Entry  `json:"person"`
	Language string `json:"language"`
}

// CharacterRole is one row of a media entity's character listing.
type CharacterRole struct {
	Character   Entry        `json:"character"`
	Role        string       `json:"role"`
	Favorites   int          `json:"favorites"`
	VoiceActors []VoiceActor `json:"voice_actors"`
}

// StaffMember is one row of an anime's staff listing.
type StaffMember struct {
	Person    Entry    `json:"person"`
	Positions []string `json:"positions"`
}

// AnimeAppearance is one anime a character appears in.
type AnimeAppearance struct {
	Role  string `json:"role"`
	Anime Entry  `json:"anime"`
}

// MangaAppearance is one manga a character appears in.
type MangaAppearance struct {
	Role  string `json:"role"`
	Manga Entry  `json:"manga"`
}

// PersonAnimeCredit is one anime position credit of a person.
type PersonAnimeCredit struct {
	Position string `json:"position"`
	Anime    Entry  `json:"anime"`
}

// PersonMangaCredit is one manga position credit of a person.
type PersonMangaCredit struct {
	Position string `json:"position"`
	Manga    Entry  `json:"manga"`
}

// PersonVoiceCredit is one voice-acting credit of a person.
type PersonVoiceCredit struct {
	Role      string `json:"role"`
	Anime     Entry  `json:"anime"`
	Character Entry  `json:"character"`
}

// Picture is one picture of an entity; the upstream returns bare image sets.
type Picture struct {
	JPG  ImageSet `json:"jpg"`
	WebP ImageSet `json:"webp"`
}

// ClubMember is one member row of a club's membership listing.
type ClubMember struct {
	Username string `json:"username"`
	URL      string `json:"url"`
	Images   Images `json:"images"`
}

// SeasonYear is one row of the season index: a year and its named seasons.
type SeasonYear struct {
	Year    int      `json:"year"`
	Seasons []string `json:"seasons"`
}
