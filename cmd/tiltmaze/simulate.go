package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tiltmaze/internal/core"
	"github.com/vovakirdan/tiltmaze/internal/loop"
	"github.com/vovakirdan/tiltmaze/internal/physics"
	"github.com/vovakirdan/tiltmaze/internal/replay"
	"github.com/vovakirdan/tiltmaze/internal/session"
)

var (
	flagSimTilt     string
	flagSimSeconds  float64
	flagSimRecord   string
	flagSimSave     bool
	flagSimRealtime bool
	flagSimTrace    int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <level>",
	Short: "Run a level headless with a fixed tilt",
	Long: `Simulate a level without a terminal UI. The board is held at a
constant normalized tilt (each axis -1..1) until the ball reaches the
goal, hits a trap, or the time runs out.

Negative x tilts the ball to the right, positive y rolls it down.

Examples:
  tiltmaze simulate 1 --tilt -1,1 --seconds 5
  tiltmaze simulate 2 --tilt 0,1 --record run.tmr
  tiltmaze simulate 1 --tilt -0.3,1 --trace 30 --realtime`,
	Args: cobra.ExactArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimTilt, "tilt", "0,0", "Normalized tilt as x,y")
	simulateCmd.Flags().Float64Var(&flagSimSeconds, "seconds", 10, "Longest simulated time")
	simulateCmd.Flags().StringVar(&flagSimRecord, "record", "", "Write a replay of the run to this file")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Store the result in the database")
	simulateCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Run at wall-clock speed instead of as fast as possible")
	simulateCmd.Flags().IntVar(&flagSimTrace, "trace", 0, "Print the ball every N frames (0 = off)")
}

// parseTilt parses "x,y" and clamps each axis to [-1, 1].
func parseTilt(s string) (physics.Vec2, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return physics.Vec2{}, fmt.Errorf("tilt must be x,y, got %q", s)
	}
	var v physics.Vec2
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return physics.Vec2{}, fmt.Errorf("invalid tilt component %q: %w", p, err)
		}
		v[i] = core.ClampF(f, -1, 1)
	}
	return v, nil
}

func runSimulate(cmd *cobra.Command, args []string) {
	entry := resolveLevel(args[0])
	tiltVec, err := parseTilt(flagSimTilt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSimSeconds <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --seconds must be positive")
		os.Exit(1)
	}

	opts := session.Options{
		Key:     entry.Key,
		LevelID: entry.LevelID,
		Level:   entry.Build(),
		World:   replay.World{Width: cfg.World.Width, Height: cfg.World.Height},
		Logger:  logger,
		Record:  flagSimRecord != "",
	}
	if flagSimSave {
		store := mustOpenStore()
		defer store.Close()
		opts.Recorder = store
	}

	sess := session.New(opts)
	frameDT := 1 / float64(cfg.Loop.TickRate)
	maxFrames := int(flagSimSeconds*float64(cfg.Loop.TickRate) + 0.5)

	traceDone := make(chan struct{})
	if flagSimTrace > 0 {
		sub := sess.Subscribe(maxFrames + 1)
		go printTrace(sub, flagSimTrace, traceDone)
	} else {
		close(traceDone)
	}

	frames := 0
	stepFrame := func(dt float64) {
		if frames < maxFrames && !sess.State().Outcome.Terminal() {
			sess.Advance(dt, tiltVec)
			frames++
		}
	}
	finished := func() bool {
		return frames >= maxFrames || sess.State().Outcome.Terminal()
	}

	if flagSimRealtime {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		fixed := loop.NewFixedStep(frameDT)
		interval := time.Second / time.Duration(cfg.Loop.TickRate)
		err = loop.Run(ctx, interval, loop.SystemClock{}, func(elapsed float64) bool {
			fixed.Advance(elapsed, stepFrame)
			return !finished()
		})
		stop()
		if err != nil && ctx.Err() == nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		for !finished() {
			stepFrame(frameDT)
		}
	}

	sess.Close()
	<-traceDone

	st := sess.State()
	fmt.Printf("%s: %s after %.2fs (%d frames)\n", entry.Title, st.Outcome, st.Elapsed, frames)
	fmt.Printf("Ball: (%.1f, %.1f) velocity (%.1f, %.1f)\n",
		st.Ball.Position.X(), st.Ball.Position.Y(), st.Ball.Velocity.X(), st.Ball.Velocity.Y())
	if res := sess.Result(); res != nil && res.NewBest {
		fmt.Println("New best time!")
	}

	if flagSimRecord != "" {
		rec := sess.Recording()
		if !st.Outcome.Terminal() {
			rec.Finish(st)
		}
		if err := rec.Save(flagSimRecord); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Replay written to %s\n", flagSimRecord)
	}
}

// printTrace prints every nth published state until the subscription ends
// and its buffer is drained.
func printTrace(sub *session.Subscription, n int, done chan<- struct{}) {
	defer close(done)
	i := 0
	show := func(st physics.GameState) {
		i++
		if i%n == 0 || st.Outcome.Terminal() {
			fmt.Printf("t=%6.3fs  pos=(%7.1f, %7.1f)  vel=(%7.1f, %7.1f)  %s\n",
				st.Elapsed, st.Ball.Position.X(), st.Ball.Position.Y(),
				st.Ball.Velocity.X(), st.Ball.Velocity.Y(), st.Outcome)
		}
	}
	for {
		select {
		case st := <-sub.Events():
			show(st)
		case <-sub.Done():
			for {
				select {
				case st := <-sub.Events():
					show(st)
				default:
					return
				}
			}
		}
	}
}
