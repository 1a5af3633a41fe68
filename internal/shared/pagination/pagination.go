package pagination

// DefaultPageSize is used when a request does not specify a limit.
const DefaultPageSize = 20

// MaxPageSize bounds client-requested limits.
const MaxPageSize = 100

// Page is one cursor-paginated slice of a strictly ordered sequence.
// NextCursor is nil at the end of the sequence.
type Page[T any] struct {
	Items      []T
	NextCursor *string
}

// Slice derives a page from rows fetched with a pageSize+1 query.
//
// When the extra row is present its id becomes the next cursor and the row is
// held back; the follow-up query starts at that row (the cursor row is the
// first item of the next page). Because the cursor names a row identity, not
// an offset, inserts at the head of the ordering never shift cursors already
// handed out, and concatenating pages yields each row exactly once.
func Slice[T any](rows []T, pageSize int, id func(T) string) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	if len(rows) <= pageSize {
		return Page[T]{Items: rows}
	}

	cursor := id(rows[pageSize])
	return Page[T]{
		Items:      rows[:pageSize],
		NextCursor: &cursor,
	}
}

// ClampPageSize normalizes a client-requested limit.
func ClampPageSize(limit int) int {
	if limit <= 0 {
		return DefaultPageSize
	}
	if limit > MaxPageSize {
		return MaxPageSize
	}
	return limit
}
