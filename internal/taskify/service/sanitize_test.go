package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	for _, tc := range []struct{ in, want string }{
		{`if a < b && c > d then "ship" it's fine`, `if a < b && c > d then "ship" it's fine`},
		{"x < y", "x < y"},
		{"Tom & Jerry's", "Tom & Jerry's"},
		{"  padded  ", "padded"},
		{`<p>hello</p><script>alert(1)</script>`, "<p>hello</p>"},
		{`<b onclick="steal()">bold</b>`, "<b>bold</b>"},
		{"&lt;script&gt;alert(1)&lt;/script&gt;", ""},
		{"&amp;lt;script&amp;gt;x&amp;lt;/script&amp;gt;", ""},
	} {
		require.Equal(t, tc.want, sanitize(tc.in), tc.in)
	}
}

func TestSanitizeIsStable(t *testing.T) {
	for _, in := range []string{"a < b", "Tom & Jerry", `"quoted"`, "<em>kept</em>"} {
		once := sanitize(in)
		require.Equal(t, once, sanitize(once), in)
	}
}
