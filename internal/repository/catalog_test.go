package repository

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/book-catalog-service/internal/domain/model"
)

func TestCatalogInsertAssignsIDs(t *testing.T) {
	catalog := NewCatalog()

	first := catalog.Insert(model.Book{Title: "First"})
	second := catalog.Insert(model.Book{Title: "Second"})
	third := catalog.Insert(model.Book{Title: "Third"})

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 3, third.ID)
	assert.Equal(t, 3, catalog.Len())
}

// The id policy derives the next id from the last entry, so deleting the last
// of three books and inserting again reuses id 3. Kept for compatibility with
// the system this service replaces.
func TestCatalogInsertReusesIDAfterTailDelete(t *testing.T) {
	catalog := NewCatalog()
	catalog.Insert(model.Book{Title: "First"})
	catalog.Insert(model.Book{Title: "Second"})
	catalog.Insert(model.Book{Title: "Third"})

	require.NoError(t, catalog.Remove(3))

	reborn := catalog.Insert(model.Book{Title: "Fourth"})
	assert.Equal(t, 3, reborn.ID)
}

func TestCatalogFindByID(t *testing.T) {
	catalog := NewCatalog()
	inserted := catalog.Insert(model.Book{Title: "X book", Author: "A"})

	t.Run("found", func(t *testing.T) {
		book, err := catalog.FindByID(inserted.ID)
		require.NoError(t, err)
		assert.Equal(t, "X book", book.Title)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := catalog.FindByID(99)
		assert.ErrorIs(t, err, ErrBookNotFound)
	})
}

func TestCatalogFilterByMaxRating(t *testing.T) {
	catalog := NewCatalog()
	for _, b := range SeedBooks() {
		catalog.Insert(model.Book{Title: b.Title, Author: b.Author, Description: b.Description, Rating: b.Rating, PublishedDate: b.PublishedDate})
	}

	tests := []struct {
		name   string
		rating int
		want   int
	}{
		{name: "rating 1 matches only the lowest", rating: 1, want: 1},
		{name: "rating 3 matches low and mid", rating: 3, want: 3},
		{name: "rating 5 matches everything", rating: 5, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.FilterByMaxRating(tt.rating)
			assert.Len(t, got, tt.want)
			for _, b := range got {
				assert.LessOrEqual(t, b.Rating, tt.rating)
			}
		})
	}
}

func TestCatalogFilterByPublishedDate(t *testing.T) {
	catalog := NewCatalog()
	for _, b := range SeedBooks() {
		catalog.Insert(model.Book{Title: b.Title, Rating: b.Rating, PublishedDate: b.PublishedDate})
	}

	assert.Len(t, catalog.FilterByPublishedDate(2030), 2)
	assert.Len(t, catalog.FilterByPublishedDate(2026), 1)
	assert.Empty(t, catalog.FilterByPublishedDate(2001))
}

func TestCatalogReplace(t *testing.T) {
	catalog := NewCatalog()
	inserted := catalog.Insert(model.Book{Title: "Before", Rating: 2})

	t.Run("replaces matching entry in full", func(t *testing.T) {
		err := catalog.Replace(model.Book{ID: inserted.ID, Title: "After", Rating: 4})
		require.NoError(t, err)

		book, err := catalog.FindByID(inserted.ID)
		require.NoError(t, err)
		assert.Equal(t, "After", book.Title)
		assert.Equal(t, 4, book.Rating)
		assert.Empty(t, book.Author)
	})

	t.Run("unknown id", func(t *testing.T) {
		err := catalog.Replace(model.Book{ID: 42, Title: "Ghost"})
		assert.ErrorIs(t, err, ErrBookNotFound)
	})
}

func TestCatalogRemove(t *testing.T) {
	catalog := NewCatalog()
	catalog.Insert(model.Book{Title: "First"})
	catalog.Insert(model.Book{Title: "Second"})

	require.NoError(t, catalog.Remove(1))
	assert.Equal(t, 1, catalog.Len())

	_, err := catalog.FindByID(1)
	assert.ErrorIs(t, err, ErrBookNotFound)

	assert.ErrorIs(t, catalog.Remove(1), ErrBookNotFound)
}

// List must return a snapshot; mutating the result must not touch the catalog.
func TestCatalogListReturnsSnapshot(t *testing.T) {
	catalog := NewCatalog()
	catalog.Insert(model.Book{Title: "Original"})

	snapshot := catalog.List()
	snapshot[0].Title = "Mutated"

	book, err := catalog.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Original", book.Title)
}

func TestCatalogConcurrentAccess(t *testing.T) {
	catalog := NewCatalog()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			catalog.Insert(model.Book{Title: "Concurrent"})
		}()
		go func() {
			defer wg.Done()
			_ = catalog.List()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, catalog.Len())
}
