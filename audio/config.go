package audio

// AudioConfig holds feedback sound settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the stock mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundClick: 0.6,
			SoundThud:  0.8,
			SoundChime: 0.5,
		},
		SampleRate: 44100,
	}
}

// volume returns the effective volume for a sound
func (c *AudioConfig) volume(s SoundType) float64 {
	v, ok := c.EffectVolumes[s]
	if !ok {
		v = 1.0
	}
	return v * c.MasterVolume
}
