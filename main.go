package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/automoto/toolrush/config"
	"github.com/automoto/toolrush/level"
	"github.com/automoto/toolrush/logger"
	"github.com/automoto/toolrush/scenes"
	"github.com/automoto/toolrush/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene  Scene
	width  int
	height int
}

func NewGame(s *session.Session) *Game {
	w := s.Config().World
	return &Game{
		scene:  scenes.NewArenaScene(s),
		width:  w.Width,
		height: w.Height,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.width, g.height
}

func main() {
	configPath := flag.String("config", "", "YAML config overlaid on the defaults")
	levelPath := flag.String("level", "", "Tiled .tmx map providing arena obstacles")
	layer := flag.String("layer", level.DefaultObstacleLayer, "object group holding the obstacles")
	flag.Parse()

	cfg := config.Current()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Log.WithError(err).Fatal("failed to load config")
		}
		cfg = loaded
	}
	logger.Init(cfg.Log)

	if *levelPath != "" {
		fsys := os.DirFS(filepath.Dir(*levelPath))
		arena, err := level.Load(fsys, filepath.Base(*levelPath), *layer)
		if err != nil {
			logger.Log.WithError(err).Warn("level not loaded, using configured obstacles")
		} else {
			cfg.World.Obstacles = arena.Obstacles
			logger.Log.WithFields(logrus.Fields{
				"level":     *levelPath,
				"obstacles": len(arena.Obstacles),
			}).Info("level loaded")
		}
	}
	config.Apply(cfg)

	s := session.New(cfg)
	defer s.Close()

	ebiten.SetWindowSize(cfg.World.Width*2, cfg.World.Height*2)
	ebiten.SetWindowTitle("toolrush")
	if cfg.World.TickRate > 0 {
		ebiten.SetTPS(cfg.World.TickRate)
	}

	if err := ebiten.RunGame(NewGame(s)); err != nil {
		logger.Log.WithError(err).Fatal("game exited")
	}
}
