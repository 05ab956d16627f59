// Package content loads page bodies for content routes.
//
// A Source maps a content key such as "about.html" or "guides/intro.html"
// to raw HTML. DirSource reads from a local directory and S3Source from a
// bucket. Cached puts a TTL cache in front of either one, and Watcher
// invalidates cached entries when files under a DirSource root change.
//
// Keys are slash-separated relative paths. Keys that are absolute or that
// contain ".." or empty segments are rejected with ErrInvalidKey.
package content
