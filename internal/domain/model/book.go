// Package model defines the core domain entities for the book catalog service.
package model

// Book represents a single catalog entry.
//
// ID is assigned by the catalog store on insert and is zero until then.
// Title and author carry no uniqueness constraint.
//
// @Description Book catalog entry
// @Example {"id": 1, "title": "Computer Science Pro", "author": "codingwithroby", "description": "A very nice book!", "rating": 5, "published_date": 2030}
type Book struct {
	// ID is the catalog-assigned identifier (1-based, monotonic).
	ID int `json:"id" example:"1"`
	// Title is the book title.
	Title string `json:"title" example:"Computer Science Pro"`
	// Author is the book author.
	Author string `json:"author" example:"codingwithroby"`
	// Description is a short free-text description.
	Description string `json:"description" example:"A very nice book!"`
	// Rating is the book rating from 1 to 5.
	Rating int `json:"rating" example:"5"`
	// PublishedDate is the publication year.
	PublishedDate int `json:"published_date" example:"2030"`
}

// Fields returns the explicit field mapping used when a Book is stored in the
// response cache. Exactly these six fields are serialized; adding a field to
// Book does not leak it into cached payloads unless it is added here too.
func (b Book) Fields() map[string]any {
	return map[string]any{
		"id":             b.ID,
		"title":          b.Title,
		"author":         b.Author,
		"description":    b.Description,
		"rating":         b.Rating,
		"published_date": b.PublishedDate,
	}
}

// FieldsList converts an ordered sequence of books into the list-of-mappings
// form used for cached list responses. The order of books is preserved.
func FieldsList(books []Book) []map[string]any {
	out := make([]map[string]any, 0, len(books))
	for _, b := range books {
		out = append(out, b.Fields())
	}
	return out
}
