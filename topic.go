package docbot

import (
	"net/url"
	"slices"
	"strings"
)

// Topic is a documentation source the bot can answer questions about.
type Topic struct {
	Name        string `json:"name" yaml:"name"`
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description,omitempty" yaml:"description"`
	Thumbnail   string `json:"thumbnail,omitempty" yaml:"thumbnail"`
	ChannelID   string `json:"channelId,omitempty" yaml:"channel_id"`
}

// Validate returns an error if the topic contains invalid fields.
func (t *Topic) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return Errorf(EINVALID, "topic name required")
	}
	if t.URL == "" {
		return Errorf(EINVALID, "topic %q URL required", t.Name)
	}
	u, err := url.Parse(t.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Errorf(EINVALID, "topic %q URL must be an absolute http(s) URL: %q", t.Name, t.URL)
	}
	return nil
}

// Topics is an immutable table of topics keyed by case-insensitive name.
type Topics struct {
	byName map[string]Topic
	names  []string
}

// NewTopics validates topics and builds a lookup table.
// Duplicate names (ignoring case) are rejected.
func NewTopics(topics []Topic) (*Topics, error) {
	t := &Topics{byName: make(map[string]Topic, len(topics))}
	for _, topic := range topics {
		if err := topic.Validate(); err != nil {
			return nil, err
		}
		key := topicKey(topic.Name)
		if _, ok := t.byName[key]; ok {
			return nil, Errorf(EINVALID, "duplicate topic %q", topic.Name)
		}
		t.byName[key] = topic
		t.names = append(t.names, key)
	}
	slices.Sort(t.names)
	return t, nil
}

// Lookup returns the topic with the given name.
// Returns ENOTFOUND if no such topic exists.
func (t *Topics) Lookup(name string) (Topic, error) {
	topic, ok := t.byName[topicKey(name)]
	if !ok {
		return Topic{}, Errorf(ENOTFOUND, "unknown topic %q", name)
	}
	return topic, nil
}

// List returns all topics sorted by name.
func (t *Topics) List() []Topic {
	topics := make([]Topic, 0, len(t.names))
	for _, name := range t.names {
		topics = append(topics, t.byName[name])
	}
	return topics
}

// Len returns the number of topics.
func (t *Topics) Len() int {
	return len(t.names)
}

func topicKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
