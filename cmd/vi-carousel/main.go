// vi-carousel - a swipeable slide carousel for the terminal
//
// Drag slides with the mouse, step with h/l or the arrow keys,
// click or press Enter to open the current slide's link.
package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/vi-carousel/action"
	"github.com/lixenwraith/vi-carousel/asset"
	"github.com/lixenwraith/vi-carousel/audio"
	"github.com/lixenwraith/vi-carousel/carousel"
	"github.com/lixenwraith/vi-carousel/config"
	"github.com/lixenwraith/vi-carousel/core"
	"github.com/lixenwraith/vi-carousel/resource"
)

var (
	version    = "dev"
	configPath string
	assetsDir  string
	debugMode  bool
	autoplay   bool
	noAudio    bool
)

var rootCmd = &cobra.Command{
	Use:   "vi-carousel",
	Short: "vi-carousel - terminal slide carousel",
	Long: `vi-carousel shows a circular carousel of slides in the terminal.

  vi-carousel                                   Run the built-in demo
  vi-carousel --config deck.toml                Run a deck, paths relative to the file
  vi-carousel --config deck.toml --assets dir   Resolve slide paths against dir
  vi-carousel --autoplay=false --no-audio       Override deck settings`,
	Version:      version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML deck file (default: built-in demo)")
	rootCmd.Flags().StringVar(&assetsDir, "assets", "", "directory slide paths resolve against")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "write a debug log to logs/")
	rootCmd.Flags().BoolVar(&autoplay, "autoplay", false, "advance automatically (overrides the deck)")
	rootCmd.Flags().BoolVar(&noAudio, "no-audio", false, "disable feedback sounds")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	logFile := setupLogging(debugMode)
	if logFile != nil {
		defer logFile.Close()
	}

	// Configuration errors surface before the terminal enters raw mode
	file, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("autoplay") {
		file.Carousel.AutoPlay = autoplay
	}
	if noAudio {
		file.Audio.Enabled = false
	}

	engineCfg, err := file.Engine()
	if err != nil {
		return err
	}
	catalog, err := carousel.Expand(file.CarouselItems(), resolverFor(file))
	if err != nil {
		return err
	}
	log.Printf("Loaded %d slides from %s", catalog.Len(), file.Source)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	core.SetCrashScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	screen.EnableMouse()
	screen.HideCursor()

	sound := audio.NewSoundManager(file.AudioConfig())
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the carousel runs silent
		log.Printf("Audio initialization failed: %v", err)
		sound = nil
	} else {
		defer sound.Cleanup()
	}

	a, err := newApp(screen, catalog, engineCfg, sound, action.NewBrowser())
	if err != nil {
		return err
	}
	a.layer.SetGlyphs(file.IndicatorGlyphs())
	return a.run()
}

func loadConfig() (*config.File, error) {
	var (
		file *config.File
		err  error
	)
	if configPath != "" {
		file, err = config.Load(configPath)
	} else {
		file, err = config.Default()
	}
	if err != nil {
		return nil, err
	}
	file.ApplyEnv()
	return file, nil
}

// resolverFor picks the tree slide paths are relative to: --assets, the deck's directory, or the embedded demo
func resolverFor(file *config.File) carousel.Resolver {
	var fsys fs.FS
	switch {
	case assetsDir != "":
		fsys = os.DirFS(assetsDir)
	case configPath != "":
		fsys = os.DirFS(filepath.Dir(configPath))
	default:
		fsys = asset.Slides()
	}
	log.Printf("Resolving slides for %s", file.Source)
	return resource.NewFSResolver(fsys)
}
