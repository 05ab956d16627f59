package server

import (
	"github.com/vango-dev/outlet/pkg/browser"
)

// RemoteWindow is a router.Window whose history and title changes are
// mirrored to a connected browser.
type RemoteWindow struct {
	*browser.Memory
	send func(ServerMessage)
}

// NewRemoteWindow creates a window at path that reports pushes and title
// changes through send.
func NewRemoteWindow(path string, send func(ServerMessage)) *RemoteWindow {
	return &RemoteWindow{Memory: browser.NewMemory(path), send: send}
}

// PushState records path and tells the browser to push it.
func (w *RemoteWindow) PushState(path string) {
	w.Memory.PushState(path)
	w.send(ServerMessage{Type: MsgPush, Path: path})
}

// SetTitle records title and tells the browser to show it.
func (w *RemoteWindow) SetTitle(title string) {
	w.Memory.SetTitle(title)
	w.send(ServerMessage{Type: MsgTitle, Title: title})
}
