package asset

// DefaultConfig is the built-in TOML configuration, resource paths resolve against Slides
const DefaultConfig = `
# === Engine tunables ===
[carousel]
slide_threshold = 5.0   # cells
slide_time = 0.3        # seconds
autoplay = true
autoplay_time = 4.0     # seconds

# === Feedback ===
[audio]
enabled = true
master_volume = 0.5
sample_rate = 44100

[display]
indicator_active = "●"
indicator_inactive = "○"

# === Slides ===
[[item]]
resource = "slides/intro"
actions = ["https://github.com/lixenwraith/vi-carousel"]

[[item]]
resource = "slides/gallery"
multi = true
actions = [
    "https://github.com/gdamore/tcell",
    "https://github.com/gopxl/beep",
    "https://github.com/BurntSushi/toml",
]

[[item]]
resource = "slides/outro.txt"
actions = ["https://go.dev"]
`
