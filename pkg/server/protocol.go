package server

import (
	"encoding/json"
	"strings"

	"github.com/vango-dev/outlet/internal/errors"
)

// Message types.
const (
	MsgNavigate = "navigate"
	MsgPopState = "popstate"
	MsgPush     = "push"
	MsgTitle    = "title"
	MsgRender   = "render"
)

// ClientMessage is sent by the browser.
type ClientMessage struct {
	Type string `json:"type"`
	Path string `json:"path"`
}

// ServerMessage is sent to the browser.
type ServerMessage struct {
	Type  string `json:"type"`
	Path  string `json:"path,omitempty"`
	Title string `json:"title,omitempty"`
	HTML  string `json:"html,omitempty"`
}

// DecodeClientMessage parses and validates a client frame.
func DecodeClientMessage(data []byte) (ClientMessage, error) {
	var m ClientMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return m, errors.New("E401").Wrap(err)
	}
	switch m.Type {
	case MsgNavigate, MsgPopState:
	default:
		return m, errors.New("E401").WithDetail("unknown type " + m.Type)
	}
	if !strings.HasPrefix(m.Path, "/") || strings.HasPrefix(m.Path, "//") {
		return m, errors.New("E401").WithDetail("path must be site-relative")
	}
	return m, nil
}

func encode(m ServerMessage) []byte {
	// ServerMessage holds only strings; Marshal cannot fail.
	data, _ := json.Marshal(m)
	return data
}
