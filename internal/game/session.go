package game

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/samdwyer/delve/internal/combat"
	"github.com/samdwyer/delve/internal/config"
	"github.com/samdwyer/delve/internal/entity"
	"github.com/samdwyer/delve/internal/gamedata"
	"github.com/samdwyer/delve/internal/world"
)

// maxMessages caps the message log; older entries are dropped first.
const maxMessages = 64

// Session owns the map and every actor for one game. All core operations are
// methods on it and run synchronously; it is not safe for concurrent use.
type Session struct {
	seed     int64
	m        *world.Map
	actors   *entity.Roster
	player   entity.ActorID
	vis      *world.Visibility
	resolver *combat.Resolver
	logger   *log.Logger

	state    TurnState
	turn     int
	messages []string
}

// Option configures a Session.
type Option func(*options)

type options struct {
	logger *log.Logger
	fov    world.FOVOracle
	rng    *rand.Rand
}

// WithLogger sets the session logger. By default nothing is logged.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithFOV replaces the default Bresenham field-of-view oracle.
func WithFOV(oracle world.FOVOracle) Option {
	return func(o *options) { o.fov = oracle }
}

// WithRand supplies the random source used for generation, overriding the seed.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

func buildOptions(opts []Option) options {
	o := options{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewSession generates a dungeon from cfg and returns a session waiting for the
// player's first input. It fails only on invalid configuration or missing game data.
func NewSession(ctx context.Context, cfg config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	playerDef, monsters, err := gamedata.LoadActors()
	if err != nil {
		return nil, fmt.Errorf("load actors: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(seed))
	}

	params := world.GenParams{
		Width:              cfg.Map.Width,
		Height:             cfg.Map.Height,
		RoomMinSize:        cfg.Rooms.MinSize,
		RoomMaxSize:        cfg.Rooms.MaxSize,
		MaxRooms:           cfg.Rooms.MaxRooms,
		MaxMonstersPerRoom: cfg.Rooms.MaxMonsters,
	}
	gen := world.Generate(ctx, params, o.rng, world.Archetypes{Player: playerDef, Monsters: monsters})

	if o.fov == nil {
		o.fov = world.NewBresenhamFOV(gen.Map.Width, gen.Map.Height)
	}
	s := newSession(gen.Map, gen.Actors, cfg.FOV, o)
	s.seed = seed

	s.logger.Info("dungeon generated",
		"seed", seed,
		"width", gen.Map.Width,
		"height", gen.Map.Height,
		"rooms", len(gen.Rooms),
		"monsters", gen.Actors.Len()-1,
	)
	return s, nil
}

// newSession wires a session around an existing map and roster: it registers the
// map with the FOV oracle and computes the player's initial view.
func newSession(m *world.Map, actors *entity.Roster, fovCfg config.FOVConfig, o options) *Session {
	algo, err := world.ParseFOVAlgorithm(fovCfg.Algorithm)
	if err != nil {
		o.logger.Warn("falling back to basic fov", "error", err)
	}
	world.RegisterFOV(m, o.fov)

	s := &Session{
		m:        m,
		actors:   actors,
		player:   actors.PlayerID(),
		vis:      world.NewVisibility(m, o.fov, fovCfg.Radius, fovCfg.LightWalls, algo),
		resolver: combat.NewResolver(),
		logger:   o.logger,
		state:    AwaitingPlayerInput,
		messages: make([]string, 0, maxMessages),
	}
	if player := s.Player(); player != nil {
		s.vis.Update(player.X, player.Y)
	}
	return s
}

// Seed returns the seed the dungeon was generated from.
func (s *Session) Seed() int64 { return s.seed }

// Map returns the tile grid.
func (s *Session) Map() *world.Map { return s.m }

// Actors returns the roster of every actor, in turn order.
func (s *Session) Actors() *entity.Roster { return s.actors }

// PlayerID returns the player's handle.
func (s *Session) PlayerID() entity.ActorID { return s.player }

// Player returns the player actor.
func (s *Session) Player() *entity.Actor { return s.actors.Get(s.player) }

// State returns the scheduler state.
func (s *Session) State() TurnState { return s.state }

// Turn returns how many turns the player has taken.
func (s *Session) Turn() int { return s.turn }

// IsVisible reports whether the player currently sees (x, y).
func (s *Session) IsVisible(x, y int) bool { return s.vis.IsVisible(x, y) }

// IsExplored reports whether the player has ever seen (x, y).
func (s *Session) IsExplored(x, y int) bool { return s.vis.IsExplored(x, y) }

// Messages returns the message log, oldest first.
func (s *Session) Messages() []string {
	out := make([]string, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Session) addMessage(msg string) {
	if msg == "" {
		return
	}
	if len(s.messages) == maxMessages {
		copy(s.messages, s.messages[1:])
		s.messages = s.messages[:maxMessages-1]
	}
	s.messages = append(s.messages, msg)
}
