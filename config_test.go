package jetvalue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildConfig_Defaults(t *testing.T) {
	cfg := buildConfig(nil)
	require.Equal(t, EscapeJSON, cfg.Escape())
	require.Equal(t, MapsNaive, cfg.Maps())
	require.Equal(t, DefaultMaxDepth, cfg.maxDepth)
	require.Equal(t, context.Background(), cfg.Context())
}

func TestBuildConfig_AppliesOptionsInOrder(t *testing.T) {
	cfg := buildConfig([]Option{
		WithEscape(EscapeUnicode),
		WithMaps(MapsStrict),
		WithMaxDepth(5),
	})
	require.Equal(t, EscapeUnicode, cfg.Escape())
	require.Equal(t, MapsStrict, cfg.Maps())
	require.Equal(t, 5, cfg.maxDepth)
}

func TestBuildConfig_SkipsNilOptions(t *testing.T) {
	cfg := buildConfig([]Option{nil, WithMaxDepth(7)})
	require.Equal(t, 7, cfg.maxDepth)
}
