package models

// Default paging applied when the query string omits page or size.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// SearchContactRequest holds the query parameters of GET /api/contacts.
type SearchContactRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitnil,min=3,max=255"`
	Email *string `json:"email,omitempty" validate:"omitnil,min=1,max=255"`
	Phone *string `json:"phone,omitempty" validate:"omitnil,min=1,max=15"`
	Page  int     `json:"page" validate:"min=1"`
	Size  int     `json:"size" validate:"min=1,max=100"`
}

// ContactFilter is the store-level search predicate. Username is always set.
type ContactFilter struct {
	Username string
	Name     *string
	Email    *string
	Phone    *string
	Limit    uint64
	Offset   uint64
}

// Paging describes the position of a page within the full result set.
type Paging struct {
	Size        int `json:"size"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_page"`
}

// Page is one window of an ordered result set.
type Page[T any] struct {
	Items  []T    `json:"data"`
	Paging Paging `json:"paging"`
}

// NewPage builds a page descriptor; TotalPages is ceil(total/size).
func NewPage[T any](items []T, page, size int, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}

	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	return Page[T]{
		Items: items,
		Paging: Paging{
			Size:        size,
			CurrentPage: page,
			TotalPages:  totalPages,
		},
	}
}
