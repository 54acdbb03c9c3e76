package models

import "time"

// Categories offered by the create form. "Other" lets the user type a
// free-text category instead.
const (
	CategorySports     = "Sports"
	CategoryPopCulture = "Popular Culture"
	CategoryMovies     = "Movies"
	CategoryFood       = "Food"
	CategoryTVShows    = "TV Shows"
	CategoryMusic      = "Music"
	CategoryGaming     = "Gaming"
	CategoryOther      = "Other"
)

// CategoryMostPopular is a virtual search category: records with at
// least one co-signer, ordered by co-signer count.
const CategoryMostPopular = "most popular"

// DreamTeam is a document in the "dreams" collection of the document
// store, so there are no GORM tags here. Title and picks hold the
// title-cased display form; equivalence between records is judged on
// the normalized, order-independent pick set, never on ID or title.
type DreamTeam struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Picks       [3]string `json:"picks"`
	Category    string    `json:"category"`
	CategoryKey string    `json:"category_key"`
	AuthorID    uint32    `json:"author_id"`
	AuthorName  string    `json:"author_name"`
	Cosigners   []string  `json:"cosigners"`
	CreatedAt   time.Time `json:"created_at"`
}
