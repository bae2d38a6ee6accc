package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/missile-command/audio"
	"github.com/lixenwraith/missile-command/config"
	"github.com/lixenwraith/missile-command/engine"
	"github.com/lixenwraith/missile-command/game"
	"github.com/lixenwraith/missile-command/highscore"
	"github.com/lixenwraith/missile-command/parameter"
	"github.com/lixenwraith/missile-command/render"
	"github.com/lixenwraith/missile-command/status"
)

const appName = "missile-command"

var (
	configFlag    = flag.String("config", "", "TOML config file; defaults are used when empty")
	demoFlag      = flag.Bool("demo", false, "Replay the attract mode recording")
	debugFlag     = flag.Bool("debug", false, "Write logs to the log directory")
	muteFlag      = flag.Bool("mute", false, "Disable sound")
	highscoreFlag = flag.String("highscores", "", "Highscore file; overrides the config path")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *highscoreFlag != "" {
		cfg.Paths.HighscoreFile = *highscoreFlag
	}

	log, err := setupLogging(*debugFlag, cfg.Logging, cfg.Paths.LogDir)
	if err != nil {
		return err
	}
	defer log.Sync()

	scores, err := highscore.Open(cfg.Paths.HighscoreFile)
	if err != nil {
		return err
	}

	var demo *game.DemoScript
	if *demoFlag {
		if demo, err = game.LoadDemo(cfg.Paths.DemoFile); err != nil {
			return err
		}
	}

	var sound engine.SoundPlayer = engine.NopSound{}
	if cfg.Audio.Enabled && !*muteFlag {
		player := audio.NewPlayer(audio.DefaultSampleRate, cfg.Audio.Volume, log)
		if err := player.Start(); err != nil {
			log.Warn("audio unavailable, continuing muted", zap.Error(err))
		} else {
			defer player.Close()
			sound = player
		}
	}

	reg := status.NewRegistry()
	g, err := game.New(game.Options{
		Config:     cfg,
		Sound:      sound,
		Highscores: scores,
		Demo:       demo,
		Status:     reg,
		Logger:     log,
	})
	if err != nil {
		return err
	}

	outcome, err := play(g, reg, log)
	if err != nil {
		return err
	}
	log.Info("game finished", zap.Stringer("outcome", outcome), zap.Int("score", g.Score()))

	if outcome == game.OutcomeHighscore {
		fmt.Printf("NEW HIGH SCORE %d\nEnter your initials: ", g.Score())
		rec := highscore.Record{Score: g.Score(), Initials: readInitials(os.Stdin)}
		if err := scores.Append(rec); err != nil {
			return err
		}
		log.Info("highscore saved", zap.String("initials", rec.Initials))
	}
	return nil
}

// play owns the terminal for the duration of one game
func play(g *game.Game, reg *status.Registry, log *zap.Logger) (outcome game.Outcome, err error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return game.OutcomeQuit, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return game.OutcomeQuit, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	// Runs after screen.Fini, so the trace lands on a restored terminal
	defer func() {
		if r := recover(); r != nil {
			log.Error("panic", zap.Any("value", r), zap.ByteString("stack", debug.Stack()))
			err = fmt.Errorf("crashed: %v\n%s", r, debug.Stack())
		}
	}()
	defer screen.Fini()

	r := render.NewRenderer(screen, reg, appName)
	return loop(g, screen, r, reg.Floats.Get(status.KeyFPS)), nil
}

// loop runs fixed-rate frames until the game reports an outcome
func loop(g *game.Game, screen tcell.Screen, r *render.Renderer, fps *status.AtomicFloat) game.Outcome {
	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / parameter.TargetFPS)
	defer ticker.Stop()

	last := time.Now()
	var smoothed float64
	for g.Result() == game.OutcomeRunning {
		select {
		case ev := <-events:
			if in, ok := render.Translate(ev, r.Canvas()); ok {
				g.DispatchEvent(in)
			}

		case now := <-ticker.C:
			dt := min(now.Sub(last).Seconds(), parameter.MaxFrameDt)
			last = now
			if dt > 0 {
				smoothed = 0.9*smoothed + 0.1/dt
				fps.Set(smoothed)
			}

			g.Update(dt)
			g.Draw(r)
		}
	}
	return g.Result()
}

// readInitials takes up to three letters from the first line, uppercased
func readInitials(in io.Reader) string {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "???"
	}

	var b strings.Builder
	for _, ch := range line {
		if b.Len() == 3 {
			break
		}
		if unicode.IsLetter(ch) && ch < unicode.MaxASCII {
			b.WriteRune(unicode.ToUpper(ch))
		}
	}
	if b.Len() == 0 {
		return "???"
	}
	return b.String()
}
