package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    ListOptions
		wantErr error
	}{
		{"defaults are valid", DefaultListOptions(), nil},
		{"sort by description", ListOptions{SortBy: SortByDescription, Page: 1, PageSize: 1}, nil},
		{"sort by completed", ListOptions{SortBy: SortByCompleted, Page: 7, PageSize: 100}, nil},
		{"empty sort field", ListOptions{Page: 1, PageSize: 10}, ErrInvalidSortField},
		{"unknown sort field", ListOptions{SortBy: "priority", Page: 1, PageSize: 10}, ErrInvalidSortField},
		{"zero page", ListOptions{SortBy: SortByName, Page: 0, PageSize: 10}, ErrInvalidPage},
		{"negative page", ListOptions{SortBy: SortByName, Page: -3, PageSize: 10}, ErrInvalidPage},
		{"zero page size", ListOptions{SortBy: SortByName, Page: 1, PageSize: 0}, ErrInvalidPageSize},
		{"oversized page size", ListOptions{SortBy: SortByName, Page: 1, PageSize: 101}, ErrInvalidPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestListOptionsNormalize_LegacyAliases(t *testing.T) {
	tests := []struct {
		alias string
		want  string
	}{
		{"nome", SortByName},
		{"descricao", SortByDescription},
		{"concluida", SortByCompleted},
		{"name", SortByName},
		{"priority", "priority"},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			got := ListOptions{SortBy: tt.alias, Page: 1, PageSize: 10}.Normalize()
			assert.Equal(t, tt.want, got.SortBy)
		})
	}
}

func TestListOptionsOffset(t *testing.T) {
	assert.Equal(t, 0, ListOptions{Page: 1, PageSize: 25}.offset())
	assert.Equal(t, 50, ListOptions{Page: 3, PageSize: 25}.offset())
}
