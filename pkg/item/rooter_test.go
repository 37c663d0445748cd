package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirRooter_MakeRooted(t *testing.T) {
	tests := []struct {
		name    string
		dir     string
		path    Path
		want    Path
		wantErr bool
	}{
		{
			name: "relative path under dir",
			dir:  "/proj",
			path: "a/b.txt",
			want: "/proj/a/b.txt",
		},
		{
			name: "mixed separators normalized",
			dir:  `C:\proj`,
			path: `a\b/c.txt`,
			want: "C:/proj/a/b/c.txt",
		},
		{
			name: "absolute path passes through",
			dir:  "/proj",
			path: `\other\b.txt`,
			want: "/other/b.txt",
		},
		{
			name: "empty dir roots at separator",
			dir:  "",
			path: "a.txt",
			want: "/a.txt",
		},
		{
			name:    "empty path",
			dir:     "/proj",
			path:    "",
			wantErr: true,
		},
		{
			name:    "separators-only path",
			dir:     "/proj",
			path:    `//\`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewDirRooter(tt.dir).MakeRooted(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirRooter_Deterministic(t *testing.T) {
	rooter := NewDirRooter("/proj")
	first, err := rooter.MakeRooted("a/b.txt")
	require.NoError(t, err)
	second, err := rooter.MakeRooted("a/b.txt")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRooterFunc(t *testing.T) {
	rooter := RooterFunc(func(p Path) (Path, error) {
		return "/fixed/" + p.Clean(), nil
	})
	got, err := rooter.MakeRooted("x.txt")
	require.NoError(t, err)
	assert.Equal(t, Path("/fixed/x.txt"), got)
}
