// Package classifier assigns newly created posts to a discussion topic based
// on keywords found in the post text.
package classifier

import (
	"strings"

	"codeboard/internal/config"
)

var webKeywords = []string{"html", "css", "javascript"}

// Classifier maps post text to one of the three configured topic ids.
type Classifier struct {
	webID     uint
	mernID    uint
	defaultID uint
}

// New builds a Classifier from the configured topic ids.
func New(cfg *config.Config) *Classifier {
	return &Classifier{
		webID:     cfg.TopicWebID,
		mernID:    cfg.TopicMernID,
		defaultID: cfg.TopicDefaultID,
	}
}

// Classify returns the topic id for a post. Matching is case-insensitive and
// considers both title and body; every input resolves to exactly one topic.
func (cl *Classifier) Classify(title, body string) uint {
	title = strings.ToLower(title)
	body = strings.ToLower(body)

	for _, kw := range webKeywords {
		if strings.Contains(title, kw) || strings.Contains(body, kw) {
			return cl.webID
		}
	}
	if strings.Contains(title, "mern") || strings.Contains(body, "mern") {
		return cl.mernID
	}
	return cl.defaultID
}
