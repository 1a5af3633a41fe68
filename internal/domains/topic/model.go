package topic

import (
	"time"

	"github.com/shopspring/decimal"
)

// TopicUsage is one aggregated row from post_topics: how often a topic was
// used inside the trending window and when it was last used.
type TopicUsage struct {
	Topic    string
	Count    int64
	LastUsed time.Time
}

// TrendingTopic is a scored entry served to clients. Score is the usage
// count decayed by the age of the topic's most recent use.
type TrendingTopic struct {
	Topic string          `json:"topic"`
	Count int64           `json:"count"`
	Score decimal.Decimal `json:"score"`
}

type TrendingResp struct {
	Topics []TrendingTopic `json:"topics"`
}
