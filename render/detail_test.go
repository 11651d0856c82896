package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanaki-93/lsr/model"
)

func detailedListing() []model.Entry {
	return []model.Entry{
		{
			Name:        "a.txt",
			Color:       model.ColorFile,
			Permissions: "-rw-r--r--",
			Owner:       "root",
			HumanSize:   "1.5K",
			TimeStr:     "4 Mar 09:07",
		},
		{
			Name:        "dir",
			Color:       model.ColorDirectory,
			Permissions: "drwxr-xr-x",
			Owner:       "alice",
			HumanSize:   "60",
			TimeStr:     "31 Dec  2024",
		},
	}
}

func TestRenderDetailed(t *testing.T) {
	tests := []struct {
		name     string
		showSize bool
		want     string
	}{
		{
			name:     "with sizes",
			showSize: true,
			want: "-rw-r--r-- 1.5K  root  4 Mar 09:07 a.txt\n" +
				"drwxr-xr-x   60 alice 31 Dec  2024 dir\n",
		},
		{
			name:     "without sizes",
			showSize: false,
			want: "-rw-r--r--  root  4 Mar 09:07 a.txt\n" +
				"drwxr-xr-x alice 31 Dec  2024 dir\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderDetailed(&buf, detailedListing(), tt.showSize, NewScheme(ColorNever)))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRenderDetailed_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderDetailed(&buf, nil, true, NewScheme(ColorNever)))
	assert.Empty(t, buf.String())
}
