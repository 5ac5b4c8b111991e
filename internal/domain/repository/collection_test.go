package repository

import (
	"testing"

	"apikit/internal/domain/pagination"

	"github.com/stretchr/testify/assert"
)

func TestFindOptionsFrom(t *testing.T) {
	got := FindOptionsFrom(pagination.Options{SortBy: "title:desc", Limit: 5, Page: 3, Populate: "author"})

	assert.Equal(t, FindOptions{
		Sort:     []pagination.SortField{{Field: "title", Descending: true}},
		Skip:     10,
		Limit:    5,
		Populate: []string{"author"},
	}, got)
}

func TestFindOptionsFrom_Defaults(t *testing.T) {
	got := FindOptionsFrom(pagination.Options{})

	assert.Equal(t, int64(0), got.Skip)
	assert.Equal(t, int64(10), got.Limit)
	assert.Equal(t, []pagination.SortField{{Field: "createdAt"}}, got.Sort)
	assert.Nil(t, got.Populate)
}
