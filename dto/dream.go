package dto

// ========== Request DTOs ==========

// SubmitDreamReq carries a prospective dream team. Blank and duplicate
// field handling is the resolver's job, not binding's, so that the
// caller gets the product-level error messages back.
type SubmitDreamReq struct {
	Title          string `json:"title"`
	Pick1          string `json:"pick1"`
	Pick2          string `json:"pick2"`
	Pick3          string `json:"pick3"`
	Category       string `json:"category"`
	CustomCategory string `json:"custom_category"`
}

// ========== Response DTOs ==========

type SubmitDreamResp struct {
	Outcome  string `json:"outcome"`
	RecordID string `json:"record_id"`
}

type DreamItemResp struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Picks       []string `json:"picks"`
	Category    string   `json:"category"`
	CategoryKey string   `json:"category_key"`
	AuthorID    uint32   `json:"author_id"`
	AuthorName  string   `json:"author_name"`
	Cosigners   []string `json:"cosigners"`
	CosignCount int      `json:"cosign_count"`
	CreatedAt   string   `json:"created_at"`
}

// UserSummaryResp is a user search result or friend entry, enriched
// with how many dream teams they authored and co-signed.
type UserSummaryResp struct {
	ID       uint32 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Authored int    `json:"authored"`
	Cosigned int    `json:"cosigned"`
}
