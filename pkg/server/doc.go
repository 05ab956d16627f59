// Package server serves an outlet site over HTTP.
//
// Every GET request is rendered on the server: a headless router resolves
// the path, waits for the view to load and writes the document shell with
// the outlet already filled in. The page then loads the navigation client,
// which opens a websocket to /_outlet/ws. Each connection gets a Session
// with its own router and a RemoteWindow that mirrors history and title
// changes to the browser.
//
// # Wire Protocol
//
// Messages are JSON text frames. The client sends:
//
//	{"type":"navigate","path":"/about"}   link click
//	{"type":"popstate","path":"/"}        back/forward
//
// The server sends:
//
//	{"type":"push","path":"/about"}       history.pushState
//	{"type":"title","title":"Site - About"}
//	{"type":"render","path":"/about","html":"..."}
//
// A render message carries the complete outlet HTML and is sent whenever
// the outlet changes.
package server
