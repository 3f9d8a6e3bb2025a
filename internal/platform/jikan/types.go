package jikan

// Anime is the subset of the Jikan v4 anime resource the catalog uses.
type Anime struct {
	MalID        int      `json:"mal_id"`
	Title        string   `json:"title"`
	TitleEnglish string   `json:"title_english"`
	Images       Images   `json:"images"`
	Score        *float64 `json:"score"`
	Synopsis     string   `json:"synopsis"`
	Episodes     *int     `json:"episodes"`
	Status       string   `json:"status"`
	Year         *int     `json:"year"`
	Genres       []Named  `json:"genres"`
}

type Images struct {
	JPG struct {
		ImageURL      string `json:"image_url"`
		LargeImageURL string `json:"large_image_url"`
	} `json:"jpg"`
}

type Named struct {
	MalID int    `json:"mal_id"`
	Name  string `json:"name"`
}

type Pagination struct {
	LastVisiblePage int  `json:"last_visible_page"`
	HasNextPage     bool `json:"has_next_page"`
	CurrentPage     int  `json:"current_page"`
}

// Page is one page of a list endpoint.
type Page struct {
	Data       []Anime    `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type detailEnvelope struct {
	Data Anime `json:"data"`
}

// SearchParams maps onto the /anime query string. Zero values are omitted.
type SearchParams struct {
	Query    string
	GenreID  int
	MinScore float64
	Year     int
	Page     int
}
