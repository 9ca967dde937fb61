package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
	assert.Equal(t, "q", km.Quit.Help().Key)
	assert.Equal(t, "/", km.Filter.Help().Key)
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key     string
		binding string
		want    bool
	}{
		{"q", "quit", true},
		{"ctrl+c", "quit", true},
		{"j", "down", true},
		{"tab", "next", true},
		{"shift+tab", "prev", true},
		{"left", "prev", true},
		{"/", "filter", true},
		{"x", "quit", false},
		{"enter", "filter", false},
	}

	for _, tt := range tests {
		t.Run(tt.key+"/"+tt.binding, func(t *testing.T) {
			b := km.Quit
			switch tt.binding {
			case "down":
				b = km.Down
			case "next":
				b = km.NextTab
			case "prev":
				b = km.PrevTab
			case "filter":
				b = km.Filter
			}
			assert.Equal(t, tt.want, Matches(tt.key, b))
		})
	}
}

func TestKeyMap_Help(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.ShortHelp(), 2)
	assert.NotEmpty(t, km.ListHelp())
	assert.NotEmpty(t, km.DetailHelp())
	assert.Len(t, km.FullHelp(), 4)
}
