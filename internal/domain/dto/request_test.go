package dto

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// bindJSON runs a body through gin's JSON binding the way handlers do.
func bindJSON(t *testing.T, body string, v any) error {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c.ShouldBindJSON(v)
}

func TestBookRequestBinding(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "valid request",
			body: `{"title":"A new book","author":"codingwithroby","description":"A new description","rating":5,"published_date":2029}`,
		},
		{
			name:    "title too short",
			body:    `{"title":"ab","author":"a","description":"d","rating":3,"published_date":2020}`,
			wantErr: true,
		},
		{
			name:    "missing author",
			body:    `{"title":"A new book","description":"d","rating":3,"published_date":2020}`,
			wantErr: true,
		},
		{
			name:    "description too long",
			body:    `{"title":"A new book","author":"a","description":"` + strings.Repeat("x", 101) + `","rating":3,"published_date":2020}`,
			wantErr: true,
		},
		{
			name:    "rating zero",
			body:    `{"title":"A new book","author":"a","description":"d","rating":0,"published_date":2020}`,
			wantErr: true,
		},
		{
			name:    "rating six",
			body:    `{"title":"A new book","author":"a","description":"d","rating":6,"published_date":2020}`,
			wantErr: true,
		},
		{
			name: "rating boundary values accepted",
			body: `{"title":"A new book","author":"a","description":"d","rating":1,"published_date":2000}`,
		},
		{
			name:    "published date 1999",
			body:    `{"title":"A new book","author":"a","description":"d","rating":3,"published_date":1999}`,
			wantErr: true,
		},
		{
			name:    "published date 2031",
			body:    `{"title":"A new book","author":"a","description":"d","rating":3,"published_date":2031}`,
			wantErr: true,
		},
		{
			name: "published date boundary 2030 accepted",
			body: `{"title":"A new book","author":"a","description":"d","rating":3,"published_date":2030}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req BookRequest
			err := bindJSON(t, tt.body, &req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookRequestToBook(t *testing.T) {
	req := BookRequest{
		ID:            4,
		Title:         "HP1",
		Author:        "Author 1",
		Description:   "Book Description",
		Rating:        2,
		PublishedDate: 2028,
	}

	book := req.ToBook()

	assert.Equal(t, 4, book.ID)
	assert.Equal(t, "HP1", book.Title)
	assert.Equal(t, "Author 1", book.Author)
	assert.Equal(t, "Book Description", book.Description)
	assert.Equal(t, 2, book.Rating)
	assert.Equal(t, 2028, book.PublishedDate)
}

func TestErrCodeFromStatus(t *testing.T) {
	assert.Equal(t, ErrCodeInvalidRequest, ErrCodeFromStatus(http.StatusBadRequest))
	assert.Equal(t, ErrCodeValidation, ErrCodeFromStatus(http.StatusUnprocessableEntity))
	assert.Equal(t, ErrCodeNotFound, ErrCodeFromStatus(http.StatusNotFound))
	assert.Equal(t, ErrCodeRateLimit, ErrCodeFromStatus(http.StatusTooManyRequests))
	assert.Equal(t, ErrCodeInternal, ErrCodeFromStatus(http.StatusInternalServerError))
}
