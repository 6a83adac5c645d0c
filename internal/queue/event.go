// Package queue defines message payloads exchanged over the message broker.
package queue

// BlogPublishedEvent is published when a blog is successfully created.  It
// carries enough to feed the activity log and any downstream notification
// consumer without another database round trip.
type BlogPublishedEvent struct {
	BlogID      string `json:"blog_id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	AuthorID    string `json:"author_id"`
	Author      string `json:"author"`
	PublishedAt string `json:"published_at"`
}
