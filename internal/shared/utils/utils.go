package utils

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/hibiken/asynq"
)

// UnmarshalTask decodes an asynq task payload into v.
func UnmarshalTask(t *asynq.Task, v interface{}) error {
	if err := json.Unmarshal(t.Payload(), v); err != nil {
		return fmt.Errorf("unmarshal %s payload: %w", t.Type(), err)
	}
	return nil
}

var hashtagPattern = regexp.MustCompile(`#([a-zA-Z0-9_]+)`)

// ExtractHashtags returns the distinct hashtag topics mentioned in content,
// lowercased and without the leading '#', in order of first appearance.
func ExtractHashtags(content string) []string {
	matches := hashtagPattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	topics := make([]string, 0, len(matches))
	for _, m := range matches {
		topic := strings.ToLower(m[1])
		if _, ok := seen[topic]; ok {
			continue
		}
		seen[topic] = struct{}{}
		topics = append(topics, topic)
	}

	return topics
}
