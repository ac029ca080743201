package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookFields(t *testing.T) {
	book := Book{
		ID:            7,
		Title:         "Computer Science Pro",
		Author:        "codingwithroby",
		Description:   "A very nice book!",
		Rating:        5,
		PublishedDate: 2030,
	}

	fields := book.Fields()

	assert.Len(t, fields, 6)
	assert.Equal(t, 7, fields["id"])
	assert.Equal(t, "Computer Science Pro", fields["title"])
	assert.Equal(t, "codingwithroby", fields["author"])
	assert.Equal(t, "A very nice book!", fields["description"])
	assert.Equal(t, 5, fields["rating"])
	assert.Equal(t, 2030, fields["published_date"])
}

func TestFieldsList(t *testing.T) {
	t.Run("preserves order", func(t *testing.T) {
		books := []Book{
			{ID: 1, Title: "First"},
			{ID: 2, Title: "Second"},
			{ID: 3, Title: "Third"},
		}

		list := FieldsList(books)

		require.Len(t, list, 3)
		assert.Equal(t, 1, list[0]["id"])
		assert.Equal(t, 2, list[1]["id"])
		assert.Equal(t, 3, list[2]["id"])
	})

	t.Run("empty slice yields empty list, not nil", func(t *testing.T) {
		list := FieldsList(nil)

		assert.NotNil(t, list)
		assert.Empty(t, list)
	})
}

// A single book and a one-element list containing that book must decode to
// field-equal structures once serialized.
func TestSerializationSymmetry(t *testing.T) {
	book := Book{ID: 1, Title: "X book", Author: "A", Description: "d", Rating: 3, PublishedDate: 2020}

	single, err := json.Marshal(book.Fields())
	require.NoError(t, err)

	list, err := json.Marshal(FieldsList([]Book{book}))
	require.NoError(t, err)

	var decodedSingle map[string]any
	require.NoError(t, json.Unmarshal(single, &decodedSingle))

	var decodedList []map[string]any
	require.NoError(t, json.Unmarshal(list, &decodedList))

	require.Len(t, decodedList, 1)
	assert.Equal(t, decodedSingle, decodedList[0])
}

// Cached payloads must be byte-identical across runs, so field-map encoding
// has to be deterministic.
func TestFieldsMarshalDeterministic(t *testing.T) {
	book := Book{ID: 2, Title: "HP1", Author: "Author 1", Description: "Book Description", Rating: 2, PublishedDate: 2028}

	first, err := json.Marshal(book.Fields())
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := json.Marshal(book.Fields())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
