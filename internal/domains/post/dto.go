package post

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const maxContentLength = 1000

// CreatePostReq is the publish payload.
type CreatePostReq struct {
	Content string `json:"content"`
}

func (r CreatePostReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(1, maxContentLength).Error("content must be at most 1000 characters"),
		),
	)
}

// ShareReq names the platform a share or click landed on.
type ShareReq struct {
	Platform Platform `json:"platform"`
}

func (r ShareReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Platform,
			validation.Required.Error("platform is required"),
			validation.By(func(value interface{}) error {
				p, _ := value.(Platform)
				if !p.Valid() {
					return ErrInvalidPlatform
				}
				return nil
			}),
		),
	)
}

// FeedResp is one page of a feed.
type FeedResp struct {
	Posts      []Post  `json:"posts"`
	NextCursor *string `json:"nextCursor"`
}

// ShareCountResp is returned after a share increment.
type ShareCountResp struct {
	Shares int64 `json:"shares"`
}

// ClickCountResp is returned after a click increment.
type ClickCountResp struct {
	Clicks int64 `json:"clicks"`
}
