package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr bool
	}{
		{name: "exact", input: "ELECTRONICS", want: CategoryElectronics},
		{name: "lower case", input: "books_and_media", want: CategoryBooks},
		{name: "dashes", input: "sports-and-leisure", want: CategorySports},
		{name: "surrounding space", input: " other ", want: CategoryOther},
		{name: "unknown", input: "CARS", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategory_Valid(t *testing.T) {
	t.Parallel()

	for _, c := range Categories {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, Category("electronics").Valid())
	assert.Len(t, Categories, 8)
}
