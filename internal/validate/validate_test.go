package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootPath(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"root", "/", true},
		{"page", "/introduction/", true},
		{"nested", "/zle/widgets", true},
		{"empty", "", false},
		{"relative", "introduction/", false},
		{"protocol relative", "//example.com/", false},
		{"space", "/shell grammar/", false},
		{"tab", "/a\tb", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New("site config")
			v.RootPath("link", tt.value)
			assert.Equal(t, tt.ok, v.Err() == nil, "value %q", tt.value)
		})
	}
}

func TestURL(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"https", "https://github.com/zsh-users/zsh", true},
		{"http", "http://zsh.sourceforge.io", true},
		{"no scheme", "github.com/zsh-users", false},
		{"ftp", "ftp://example.com", false},
		{"empty", "", false},
		{"path only", "/github", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New("site config")
			v.URL("socialLinks[0].link", tt.value, []string{"http", "https"})
			assert.Equal(t, tt.ok, v.Err() == nil, "value %q", tt.value)
		})
	}
}

func TestErrAggregatesAllProblems(t *testing.T) {
	v := New("site config")
	require.NoError(t, v.Err())

	v.NotEmpty("title", " ")
	v.OneOf("search.provider", "bing", []string{"local", "algolia"})

	err := v.Err()
	require.Error(t, err)

	var verr ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Errors(), 2)
	assert.Equal(t, "title", verr.Errors()[0].Field)
	assert.Contains(t, err.Error(), "2 problems")
	assert.Contains(t, err.Error(), "search.provider")
}

func TestErrIsDetachedFromValidator(t *testing.T) {
	v := New("site config")
	v.AddError("a", "broken", nil)
	err := v.Err()
	v.AddError("b", "broken too", nil)

	var verr ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Errors(), 1)
	assert.Equal(t, "invalid site config: a: broken", err.Error())
}

func TestPort(t *testing.T) {
	for port, ok := range map[int]bool{1: true, 1313: true, 65535: true, 0: false, -1: false, 65536: false} {
		v := New("tool config")
		v.Port("port", port)
		assert.Equal(t, ok, v.Err() == nil, "port %d", port)
	}

	v := New("tool config")
	v.Port("port", 0)
	assert.EqualError(t, v.Err(), "invalid tool config: port: port must be between 1 and 65535, got 0")
}
