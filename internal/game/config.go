package game

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// WallPolicy decides what happens when a move would leave the arena.
type WallPolicy int

const (
	WallKill  WallPolicy = iota // leaving the arena is death; the body stays put
	WallClamp                   // the body is pushed back inside and play continues
)

func (w WallPolicy) String() string {
	switch w {
	case WallKill:
		return "kill"
	case WallClamp:
		return "clamp"
	default:
		return "unknown"
	}
}

// ParseWallPolicy accepts "kill" or "clamp".
func ParseWallPolicy(s string) (WallPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kill":
		return WallKill, nil
	case "clamp":
		return WallClamp, nil
	}
	return 0, fmt.Errorf("%w: unknown wall policy %q", ErrInvalidConfig, s)
}

// Probe selects which part of the head is tested against the player's own trail.
type Probe int

const (
	// ProbeLeadingHalf tests the half of the body facing the heading. This keeps
	// a speed of half the body size playable, since the previous segment still
	// overlaps the trailing half.
	ProbeLeadingHalf Probe = iota
	// ProbeBody tests the whole body. Only playable when Speed == PlayerSize.
	ProbeBody
)

func (p Probe) String() string {
	switch p {
	case ProbeLeadingHalf:
		return "leading-half"
	case ProbeBody:
		return "body"
	default:
		return "unknown"
	}
}

// ParseProbe accepts "leading-half" or "body".
func ParseProbe(s string) (Probe, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "leading-half", "half":
		return ProbeLeadingHalf, nil
	case "body":
		return ProbeBody, nil
	}
	return 0, fmt.Errorf("%w: unknown probe %q", ErrInvalidConfig, s)
}

// Spawn is a player's round-start position and heading.
type Spawn struct {
	Name    string
	X, Y    int
	Heading Direction
	Color   color.RGBA
}

// Config holds every tunable of a match. It is passed by value at
// construction; nothing reads process-wide constants.
type Config struct {
	ArenaWidth     int
	ArenaHeight    int
	PlayerSize     int
	Speed          int // pixels (or cells) moved per tick
	MaxTrailLength int
	Walls          WallPolicy
	Probe          Probe
	Menus          bool // false starts straight into play and ignores pause
	FrameDelay     time.Duration
	Spawns         [2]Spawn
}

// DefaultConfig returns the classic 800x600 arena.
func DefaultConfig() Config {
	return Config{
		ArenaWidth:     800,
		ArenaHeight:    600,
		PlayerSize:     10,
		Speed:          5,
		MaxTrailLength: 1000,
		Walls:          WallKill,
		Probe:          ProbeLeadingHalf,
		Menus:          true,
		FrameDelay:     16 * time.Millisecond,
		Spawns: [2]Spawn{
			{Name: "P1", X: 100, Y: 300, Heading: Right, Color: color.RGBA{R: 0, G: 0, B: 255, A: 255}},
			{Name: "P2", X: 700, Y: 300, Heading: Left, Color: color.RGBA{R: 255, G: 0, B: 0, A: 255}},
		},
	}
}

// TermConfig returns a cell-grid configuration for a cols x rows terminal:
// one-cell players moving one cell per tick.
func TermConfig(cols, rows int) Config {
	cfg := DefaultConfig()
	cfg.ArenaWidth = cols
	cfg.ArenaHeight = rows
	cfg.PlayerSize = 1
	cfg.Speed = 1
	cfg.Probe = ProbeBody
	cfg.FrameDelay = 50 * time.Millisecond
	cfg.MaxTrailLength = min(cfg.MaxTrailLength, cols*rows)
	margin := cols / 8
	cfg.Spawns[0].X, cfg.Spawns[0].Y = margin, rows/2
	cfg.Spawns[1].X, cfg.Spawns[1].Y = cols-1-margin, rows/2
	return cfg
}

// Arena returns the playfield bounds.
func (c Config) Arena() Rect {
	return Rect{W: c.ArenaWidth, H: c.ArenaHeight}
}

// spawnRect returns the body of spawn i.
func (c Config) spawnRect(i int) Rect {
	s := c.Spawns[i]
	return Rect{X: s.X, Y: s.Y, W: c.PlayerSize, H: c.PlayerSize}
}

// Validate rejects configurations the simulation cannot run sensibly.
func (c Config) Validate() error {
	if c.ArenaWidth <= 0 || c.ArenaHeight <= 0 {
		return fmt.Errorf("%w: arena %dx%d must be positive", ErrInvalidConfig, c.ArenaWidth, c.ArenaHeight)
	}
	if c.PlayerSize <= 0 {
		return fmt.Errorf("%w: player size %d must be positive", ErrInvalidConfig, c.PlayerSize)
	}
	if c.PlayerSize > c.ArenaWidth || c.PlayerSize > c.ArenaHeight {
		return fmt.Errorf("%w: player size %d exceeds arena %dx%d", ErrInvalidConfig, c.PlayerSize, c.ArenaWidth, c.ArenaHeight)
	}
	if c.MaxTrailLength <= 0 {
		return fmt.Errorf("%w: max trail length %d must be positive", ErrInvalidConfig, c.MaxTrailLength)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("%w: speed %d must be positive", ErrInvalidConfig, c.Speed)
	}
	// A move longer than a body could jump clean over a trail segment.
	if c.Speed > c.PlayerSize {
		return fmt.Errorf("%w: speed %d exceeds player size %d and would tunnel through trails", ErrInvalidConfig, c.Speed, c.PlayerSize)
	}
	// Stored segments are distinct positions, since landing on an old one is a
	// self-hit. A bound beyond the arena's position count only wastes memory.
	cols, rows := c.ArenaWidth-c.PlayerSize+1, c.ArenaHeight-c.PlayerSize+1
	if (c.MaxTrailLength-1)/cols >= rows {
		return fmt.Errorf("%w: max trail length %d exceeds the %d positions a %dx%d arena holds", ErrInvalidConfig, c.MaxTrailLength, cols*rows, c.ArenaWidth, c.ArenaHeight)
	}
	switch c.Probe {
	case ProbeBody:
		if c.Speed < c.PlayerSize {
			return fmt.Errorf("%w: body probe needs speed == player size (got %d < %d), the previous segment would always hit", ErrInvalidConfig, c.Speed, c.PlayerSize)
		}
	case ProbeLeadingHalf:
		if c.PlayerSize < 2 {
			return fmt.Errorf("%w: leading-half probe needs player size >= 2", ErrInvalidConfig)
		}
		if c.Speed < c.PlayerSize/2 {
			return fmt.Errorf("%w: leading-half probe needs speed >= %d (got %d)", ErrInvalidConfig, c.PlayerSize/2, c.Speed)
		}
	default:
		return fmt.Errorf("%w: unknown probe %d", ErrInvalidConfig, c.Probe)
	}
	if c.Walls != WallKill && c.Walls != WallClamp {
		return fmt.Errorf("%w: unknown wall policy %d", ErrInvalidConfig, c.Walls)
	}
	if c.FrameDelay < 0 {
		return fmt.Errorf("%w: frame delay %s is negative", ErrInvalidConfig, c.FrameDelay)
	}
	arena := c.Arena()
	for i, s := range c.Spawns {
		if !s.Heading.Valid() {
			return fmt.Errorf("%w: spawn %d heading %v is not a unit direction", ErrInvalidConfig, i+1, s.Heading)
		}
		if !c.spawnRect(i).Inside(arena) {
			return fmt.Errorf("%w: spawn %d at (%d,%d) lies outside the arena", ErrInvalidConfig, i+1, s.X, s.Y)
		}
	}
	if Overlaps(c.spawnRect(0), c.spawnRect(1)) {
		return fmt.Errorf("%w: spawns overlap", ErrInvalidConfig)
	}
	return nil
}

// Environment keys read by LoadConfig.
const (
	EnvArenaWidth  = "LIGHTCYCLE_ARENA_WIDTH"
	EnvArenaHeight = "LIGHTCYCLE_ARENA_HEIGHT"
	EnvPlayerSize  = "LIGHTCYCLE_PLAYER_SIZE"
	EnvSpeed       = "LIGHTCYCLE_SPEED"
	EnvMaxTrail    = "LIGHTCYCLE_MAX_TRAIL"
	EnvWalls       = "LIGHTCYCLE_WALLS"
	EnvProbe       = "LIGHTCYCLE_PROBE"
	EnvMenus       = "LIGHTCYCLE_MENUS"
	EnvFrameDelay  = "LIGHTCYCLE_FRAME_DELAY"
)

// LoadConfig starts from base, applies values from the given .env files and
// then from the process environment, and validates the result. Missing .env
// files are skipped. Process variables win over file values.
func LoadConfig(base Config, envFiles ...string) (Config, error) {
	cfg, err := readEnv(base, envFiles)
	if err != nil {
		return base, err
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

// LoadTermConfig is LoadConfig for a cols x rows terminal. The cell geometry
// of TermConfig is kept whatever the environment says: arena, player size,
// speed and probe settings are ignored, so values meant for the window
// front-end cannot break the grid.
func LoadTermConfig(cols, rows int, envFiles ...string) (Config, error) {
	base := TermConfig(cols, rows)
	cfg, err := readEnv(base, envFiles)
	if err != nil {
		return base, err
	}
	cfg.ArenaWidth, cfg.ArenaHeight = base.ArenaWidth, base.ArenaHeight
	cfg.PlayerSize, cfg.Speed, cfg.Probe = base.PlayerSize, base.Speed, base.Probe
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

func readEnv(base Config, envFiles []string) (Config, error) {
	vals := map[string]string{}
	for _, path := range envFiles {
		m, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return base, fmt.Errorf("read %s: %w", path, err)
		}
		for k, v := range m {
			vals[k] = v
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vals[key]
		return v, ok
	}
	return applyEnv(base, lookup)
}

func applyEnv(cfg Config, lookup func(string) (string, bool)) (Config, error) {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvArenaWidth, &cfg.ArenaWidth},
		{EnvArenaHeight, &cfg.ArenaHeight},
		{EnvPlayerSize, &cfg.PlayerSize},
		{EnvSpeed, &cfg.Speed},
		{EnvMaxTrail, &cfg.MaxTrailLength},
	}
	for _, f := range ints {
		v, ok := lookup(f.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, f.key, v, err)
		}
		*f.dst = n
	}
	if v, ok := lookup(EnvWalls); ok {
		w, err := ParseWallPolicy(v)
		if err != nil {
			return cfg, err
		}
		cfg.Walls = w
	}
	if v, ok := lookup(EnvProbe); ok {
		p, err := ParseProbe(v)
		if err != nil {
			return cfg, err
		}
		cfg.Probe = p
	}
	if v, ok := lookup(EnvMenus); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvMenus, v, err)
		}
		cfg.Menus = b
	}
	if v, ok := lookup(EnvFrameDelay); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvFrameDelay, v, err)
		}
		cfg.FrameDelay = d
	}
	return cfg, nil
}
