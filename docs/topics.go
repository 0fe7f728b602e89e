// Package docs holds the user documentation of xps, one Markdown file per
// topic.
package docs

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed *.md
var docs embed.FS

// GetTopic returns the content of a documentation topic.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		return GetTopics(Topics()...)
	}

	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics returns the content of multiple documentation topics concatenated together.
// The topic "*" stands for every topic.
func GetTopics(topics ...string) (string, error) {
	var b bytes.Buffer
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Topics returns the sorted list of the documentation topics, the readme
// excepted.
func Topics() []string {
	files, _ := fs.Glob(docs, "*.md") // the pattern is valid
	var topics []string
	for _, f := range files {
		if base := strings.TrimSuffix(f, path.Ext(f)); base != "readme" {
			topics = append(topics, base)
		}
	}
	slices.Sort(topics)
	return topics
}
