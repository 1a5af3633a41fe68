package post

import "errors"

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrNotAuthor       = errors.New("only the author can delete a post")
	ErrInvalidPlatform = errors.New("unknown share platform")
)
