package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/tanema/gween/ease"

	"github.com/lixenwraith/glyphstage/asset"
	"github.com/lixenwraith/glyphstage/component"
	"github.com/lixenwraith/glyphstage/config"
	"github.com/lixenwraith/glyphstage/core"
	"github.com/lixenwraith/glyphstage/engine"
	"github.com/lixenwraith/glyphstage/parameter"
	"github.com/lixenwraith/glyphstage/prefab"
	"github.com/lixenwraith/glyphstage/stage"
	"github.com/lixenwraith/glyphstage/system"
	"github.com/lixenwraith/glyphstage/vmath"
)

const (
	arenaWidth  = 60
	arenaHeight = 20
	playerSpeed = 12 // cells per second
	coinTween   = 400 * time.Millisecond
)

// Z-index layers, higher draws on top
const (
	zArena  = 0
	zCoin   = 100
	zPlayer = 200
	zHUD    = 1000
)

// scene is the demo: walk the player into coins inside a bordered arena
type scene struct {
	world *engine.World
	rng   *rand.Rand

	player core.Entity
	coin   core.Entity
	hud    *prefab.Label
	score  int

	lastPos    vmath.Vec2
	playerIdle []string
	coinTheme  prefab.Sprite
	coinClips  component.AnimationSet
}

func buildScene(st *stage.Stage, cfg *config.Config) (*scene, error) {
	w := st.World
	wall, _ := config.ParseColor(cfg.Theme.Wall)
	player, _ := config.ParseColor(cfg.Theme.Player)
	text, _ := config.ParseColor(cfg.Theme.Text)

	s := &scene{
		world:      w,
		rng:        rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		playerIdle: []string{"@"},
	}

	if _, err := prefab.NewPanel(w, prefab.PanelOptions{
		Sprite: prefab.Sprite{Color: wall, ZIndex: zArena},
		Width:  arenaWidth,
		Height: arenaHeight,
		Style:  prefab.DoublePanelStyle,
	}); err != nil {
		return nil, err
	}

	walk, ok := st.Animations["walk"]
	if !ok {
		var err error
		if walk, err = asset.AnimationFromFrames([][]string{{"@"}, {"a"}}); err != nil {
			return nil, err
		}
	}
	spin, err := asset.AnimationFromFrames([][]string{{"o"}, {"O"}, {"0"}, {"O"}})
	if err != nil {
		return nil, err
	}
	s.coinClips = component.AnimationSet{"spin": spin}
	s.coinTheme = prefab.Sprite{Rows: []string{"o"}, Color: text, ZIndex: zCoin, Hitbox: &component.Hitbox{Size: vmath.V2(1, 1)}}

	s.player, err = prefab.NewAnimatedSprite(w, prefab.AnimatedSprite{
		Sprite: prefab.Sprite{
			Node2D: prefab.Node2D{Position: vmath.V2(arenaWidth/2, arenaHeight/2)},
			Rows:   s.playerIdle,
			Color:  player,
			ZIndex: zPlayer,
			Hitbox: &component.Hitbox{Size: vmath.V2(1, 1)},
		},
		Animations: component.AnimationSet{"walk": walk},
		Repeat:     true,
	})
	if err != nil {
		return nil, err
	}
	w.Components.Movement.Set(s.player, component.MovementComponent{Speed: playerSpeed})
	w.Components.Behavior.Set(s.player, component.BehaviorComponent{OnUpdate: s.updatePlayer})

	cam, err := prefab.NewCamera(w, prefab.Camera{})
	if err != nil {
		return nil, err
	}
	if err := st.Camera.SetCurrent(cam); err != nil {
		return nil, err
	}
	st.Camera.Follow(s.player, vmath.Vec2i{X: parameter.CameraDeadZoneMarginX, Y: parameter.CameraDeadZoneMarginY})

	// HUD rides on the camera so it stays put while the view scrolls
	s.hud, err = prefab.NewLabel(w, prefab.LabelOptions{
		Sprite: prefab.Sprite{
			Node2D: prefab.Node2D{Parent: cam, Position: vmath.V2(2, 0)},
			Color:  text,
			ZIndex: zHUD,
		},
	})
	if err != nil {
		return nil, err
	}
	s.refreshHUD()

	if err := s.spawnCoin(); err != nil {
		return nil, err
	}
	return s, nil
}

// updatePlayer keeps the player inside the arena, drives its walk cycle and collects coins
func (s *scene) updatePlayer(e core.Entity, _ time.Duration) {
	w := s.world
	tr := w.Components.Transform.MustGet(e)
	tr.Position.X = min(max(tr.Position.X, 1), arenaWidth-2)
	tr.Position.Y = min(max(tr.Position.Y, 1), arenaHeight-2)

	anim := w.Components.Animated.MustGet(e)
	moving := s.isMoving(e)
	switch {
	case moving && !anim.IsPlaying():
		system.Play(w, e, "walk")
	case !moving && anim.IsPlaying():
		system.StopAnimation(w, e)
		w.Components.Texture.MustGet(e).Rows = component.CloneRows(s.playerIdle)
	}

	if !w.IsAlive(s.coin) || w.IsQueued(s.coin) || system.IsTweening(w, s.coin) {
		return
	}
	if system.IsCollidingWith(w, e, s.coin) {
		s.score++
		s.refreshHUD()
		w.QueueFree(s.coin)
		if err := s.spawnCoin(); err != nil {
			panic(fmt.Sprintf("respawn coin: %v", err))
		}
	}
}

// isMoving reports whether the player moved since the previous tick
// Behavior runs before movement, so this lags input by one frame
func (s *scene) isMoving(e core.Entity) bool {
	pos := system.GlobalPosition(s.world, e)
	moved := pos != s.lastPos
	s.lastPos = pos
	return moved
}

// spawnCoin drops a coin at the arena center and eases it to a random free cell
func (s *scene) spawnCoin() error {
	theme := s.coinTheme
	theme.Position = vmath.V2(arenaWidth/2, arenaHeight/2)
	coin, err := prefab.NewAnimatedSprite(s.world, prefab.AnimatedSprite{
		Sprite:     theme,
		Animations: s.coinClips,
		Repeat:     true,
		Play:       "spin",
	})
	if err != nil {
		return err
	}
	target := vmath.V2(
		float64(1+s.rng.IntN(arenaWidth-2)),
		float64(1+s.rng.IntN(arenaHeight-2)),
	)
	system.TweenPosition(s.world, coin, target, coinTween, ease.OutQuad)
	s.coin = coin
	return nil
}

func (s *scene) refreshHUD() {
	s.hud.SetText(fmt.Sprintf("[ score %d | move: wasd/hjkl/arrows | quit: q ]", s.score))
}
