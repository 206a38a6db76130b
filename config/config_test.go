package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-carousel/carousel"
)

func TestParseEmptyUsesDefaults(t *testing.T) {
	f, err := Parse(nil)
	require.NoError(t, err)

	cfg, err := f.Engine()
	require.NoError(t, err)
	require.Equal(t, carousel.DefaultConfig(), cfg)
	require.True(t, f.Audio.Enabled)
	require.Empty(t, f.Items)

	active, inactive := f.IndicatorGlyphs()
	require.Equal(t, '●', active)
	require.Equal(t, '○', inactive)
}

func TestParseFullFile(t *testing.T) {
	data := `
[carousel]
slide_threshold = 8
slide_time = 0.5
autoplay = true
autoplay_time = 2

[audio]
enabled = false
master_volume = 0.25

[display]
indicator_active = "*"
indicator_inactive = "-"

[[item]]
resource = "a.png"
actions = ["one"]

[[item]]
resource = "dir"
multi = true
actions = ["two", "three"]
`
	f, err := Parse([]byte(data))
	require.NoError(t, err)

	cfg, err := f.Engine()
	require.NoError(t, err)
	require.Equal(t, 8.0, cfg.SlideThreshold)
	require.Equal(t, 500*time.Millisecond, cfg.SlideTime)
	require.True(t, cfg.IsAutoPlay)
	require.Equal(t, 2*time.Second, cfg.AutoPlayTime)

	items := f.CarouselItems()
	require.Len(t, items, 2)
	require.Equal(t, carousel.Item{ResourcePath: "a.png", Actions: []string{"one"}}, items[0])
	require.True(t, items[1].IsMulti)
	require.Equal(t, []string{"two", "three"}, items[1].Actions)

	ac := f.AudioConfig()
	require.False(t, ac.Enabled)
	require.Equal(t, 0.25, ac.MasterVolume)
	require.Equal(t, 44100, ac.SampleRate)

	active, inactive := f.IndicatorGlyphs()
	require.Equal(t, '*', active)
	require.Equal(t, '-', inactive)
}

func TestAudioConfigClampsMasterVolume(t *testing.T) {
	loud, err := Parse([]byte("[audio]\nmaster_volume = 3.5\n"))
	require.NoError(t, err)
	require.Equal(t, 1.0, loud.AudioConfig().MasterVolume)

	negative, err := Parse([]byte("[audio]\nmaster_volume = -0.5\n"))
	require.NoError(t, err)
	require.Equal(t, 0.0, negative.AudioConfig().MasterVolume)
}

func TestParseRejectsMissingResource(t *testing.T) {
	_, err := Parse([]byte("[[item]]\nactions = [\"x\"]\n"))
	require.Error(t, err)
}

func TestParseRejectsMalformedTOML(t *testing.T) {
	_, err := Parse([]byte("[carousel\nslide_time = "))
	require.Error(t, err)
}

func TestEngineRejectsInvalidValues(t *testing.T) {
	f, err := Parse([]byte("[carousel]\nslide_threshold = -1\n"))
	require.NoError(t, err)

	_, err = f.Engine()
	require.True(t, errors.Is(err, carousel.ErrConfiguration))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carousel.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[item]]\nresource = \"x\"\n"), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, path, f.Source)
	require.Len(t, f.Items, 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultEmbeddedConfig(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)
	require.Equal(t, "built-in", f.Source)
	require.Len(t, f.Items, 3)
	require.True(t, f.Items[1].Multi)

	cfg, err := f.Engine()
	require.NoError(t, err)
	require.True(t, cfg.IsAutoPlay)
	require.Equal(t, 4*time.Second, cfg.AutoPlayTime)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvAutoPlay, "true")
	t.Setenv(EnvAutoPlayTime, "1.5")
	t.Setenv(EnvSlideTime, "not-a-number")
	t.Setenv(EnvAudioEnabled, "false")
	t.Setenv(EnvMasterVolume, "150")

	f, err := Parse(nil)
	require.NoError(t, err)
	f.ApplyEnv()

	require.True(t, f.Carousel.AutoPlay)
	require.Equal(t, 1.5, f.Carousel.AutoPlayTime)
	require.Equal(t, 0.3, f.Carousel.SlideTime, "unparseable value keeps the default")
	require.False(t, f.Audio.Enabled)
	require.Equal(t, 1.0, f.Audio.MasterVolume, "volume clamps to 100")
}
