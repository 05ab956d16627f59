package template

import "strings"

type scanState uint8

const (
	stateContent scanState = iota
	stateTag
	stateComment
	stateRawText
)

// Elements whose content the parser reads as text, not markup.
var rawTextElements = map[string]bool{
	"iframe":   true,
	"noembed":  true,
	"noframes": true,
	"script":   true,
	"style":    true,
	"textarea": true,
	"title":    true,
	"xmp":      true,
}

// scanner tracks the lexical context of markup fed to it piece by piece,
// enough to tell whether the next placeholder sits in content position.
type scanner struct {
	state    scanState
	quote    byte
	name     strings.Builder
	nameDone bool
	closing  bool
	raw      string
}

func (sc *scanner) inContent() bool {
	return sc.state == stateContent
}

func (sc *scanner) feed(s string) {
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch sc.state {
		case stateContent:
			if strings.HasPrefix(s[i:], "<!--") {
				sc.state = stateComment
				i += 3
				continue
			}
			if ch == '<' && i+1 < len(s) && (isLetter(s[i+1]) || s[i+1] == '/') {
				sc.openTag(s[i+1] == '/')
				if sc.closing {
					i++
				}
			}
		case stateTag:
			switch {
			case sc.quote != 0:
				if ch == sc.quote {
					sc.quote = 0
				}
			case ch == '"' || ch == '\'':
				sc.quote = ch
				sc.nameDone = true
			case ch == '>':
				sc.state = stateContent
				if name := sc.name.String(); !sc.closing && rawTextElements[name] {
					sc.state = stateRawText
					sc.raw = name
				}
			case !sc.nameDone && (isLetter(ch) || (ch >= '0' && ch <= '9') || ch == '-'):
				sc.name.WriteByte(lower(ch))
			default:
				sc.nameDone = true
			}
		case stateComment:
			if strings.HasPrefix(s[i:], "-->") {
				sc.state = stateContent
				i += 2
			}
		case stateRawText:
			end := "</" + sc.raw
			if ch == '<' && len(s)-i >= len(end) && strings.EqualFold(s[i:i+len(end)], end) {
				sc.openTag(true)
				sc.name.WriteString(sc.raw)
				sc.nameDone = true
				i += len(end) - 1
			}
		}
	}
}

func (sc *scanner) openTag(closing bool) {
	sc.state = stateTag
	sc.quote = 0
	sc.name.Reset()
	sc.nameDone = false
	sc.closing = closing
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func lower(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch + 'a' - 'A'
	}
	return ch
}
