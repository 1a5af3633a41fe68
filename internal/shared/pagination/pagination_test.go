package pagination

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID string
}

func makeRows(n int) []row {
	rows := make([]row, n)
	for i := range rows {
		rows[i] = row{ID: fmt.Sprintf("row-%02d", i)}
	}
	return rows
}

func TestSlice_FullPageWithExtraRow(t *testing.T) {
	rows := makeRows(21)

	page := Slice(rows, 20, func(r row) string { return r.ID })

	assert.Len(t, page.Items, 20)
	require.NotNil(t, page.NextCursor)
	assert.Equal(t, "row-20", *page.NextCursor)
	assert.Equal(t, "row-19", page.Items[19].ID)
}

func TestSlice_PartialPage(t *testing.T) {
	rows := makeRows(5)

	page := Slice(rows, 20, func(r row) string { return r.ID })

	assert.Len(t, page.Items, 5)
	assert.Nil(t, page.NextCursor)
}

func TestSlice_ExactPage(t *testing.T) {
	rows := makeRows(20)

	page := Slice(rows, 20, func(r row) string { return r.ID })

	assert.Len(t, page.Items, 20)
	assert.Nil(t, page.NextCursor)
}

func TestSlice_Empty(t *testing.T) {
	page := Slice(nil, 20, func(r row) string { return r.ID })

	assert.Empty(t, page.Items)
	assert.Nil(t, page.NextCursor)
}

func TestClampPageSize(t *testing.T) {
	assert.Equal(t, DefaultPageSize, ClampPageSize(0))
	assert.Equal(t, DefaultPageSize, ClampPageSize(-3))
	assert.Equal(t, 10, ClampPageSize(10))
	assert.Equal(t, MaxPageSize, ClampPageSize(500))
}
