package parse

import "bytes"

var (
	noMatch  = []byte("일치하는 법령이 없습니다")
	htmlOpen = []byte("<html")
)

// NoMatch reports the registry's “일치하는 법령이 없습니다” banner.
func NoMatch(b []byte) bool { return bytes.Contains(b, noMatch) }

// IsHTML reports an HTML page (login wall, error page) where XML was expected.
func IsHTML(b []byte) bool {
	head := b
	if len(head) > 512 {
		head = head[:512]
	}
	return bytes.Contains(bytes.ToLower(head), htmlOpen)
}
