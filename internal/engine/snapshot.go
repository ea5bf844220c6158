package engine

// Snapshot is the read-only per-tick dump of everything a renderer or
// spectator needs to draw the level. It contains no pointers back into
// the engine; mutating it has no effect on the simulation. The JSON tags
// feed the websocket spectator stream unchanged.
type Snapshot struct {
	Level  string  `json:"level"`
	State  string  `json:"state"`
	Tick   uint64  `json:"tick"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	Ball BallView `json:"ball"`

	Energy    float64 `json:"energy"`
	EnergyMax float64 `json:"energy_max"`
	TimeLeft  float64 `json:"time_left"`
	TimeLimit float64 `json:"time_limit"`
	Elapsed   float64 `json:"elapsed"`
	Score     int     `json:"score"`

	Walls       []WallView       `json:"walls"`
	Surfaces    []SurfaceView    `json:"surfaces"`
	Targets     []TargetView     `json:"targets"`
	PowerUps    []PowerUpView    `json:"powerups"`
	Wells       []WellView       `json:"wells"`
	Teleporters []TeleporterView `json:"teleporters"`
	Pads        []PadView        `json:"bounce_pads"`
}

// BallView is the drawable ball state.
type BallView struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	VX        float64 `json:"vx"`
	VY        float64 `json:"vy"`
	Radius    float64 `json:"radius"`
	Shield    bool    `json:"shield"`
	OnSurface bool    `json:"on_surface"`
}

// WallView is a drawable wall rectangle.
type WallView struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w"`
	H      float64 `json:"h"`
	Moving bool    `json:"moving"`
}

// SurfaceView is a drawable friction zone.
type SurfaceView struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	W        float64 `json:"w"`
	H        float64 `json:"h"`
	Friction float64 `json:"friction"`
	Deadly   bool    `json:"deadly"`
}

// TargetView is a drawable target.
type TargetView struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Radius   float64 `json:"radius"`
	Required bool    `json:"required"`
	Hit      bool    `json:"hit"`
}

// PowerUpView is a drawable power-up. Collected entries stay in the list
// so renderers can animate pickups and show remaining effect time.
type PowerUpView struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Radius    float64 `json:"radius"`
	Kind      string  `json:"kind"`
	Collected bool    `json:"collected"`
	Remaining float64 `json:"remaining"`
}

// WellView is a drawable gravity well.
type WellView struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Radius   float64 `json:"radius"`
	Strength float64 `json:"strength"`
}

// TeleporterView is a drawable teleporter end.
type TeleporterView struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Radius   float64 `json:"radius"`
	Pair     int     `json:"pair"`
	Entrance bool    `json:"entrance"`
	Cooling  bool    `json:"cooling"`
}

// PadView is a drawable bounce pad.
type PadView struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	W    float64 `json:"w"`
	H    float64 `json:"h"`
	DirX float64 `json:"dir_x"`
	DirY float64 `json:"dir_y"`
}

// Snapshot captures the current drawable state.
func (l *Level) Snapshot() Snapshot {
	s := Snapshot{
		Level:  l.def.Name,
		State:  l.state.String(),
		Tick:   l.tick,
		Width:  l.def.Width,
		Height: l.def.Height,
		Ball: BallView{
			X:         l.ball.Pos.X(),
			Y:         l.ball.Pos.Y(),
			VX:        l.ball.Vel.X(),
			VY:        l.ball.Vel.Y(),
			Radius:    l.ball.Radius,
			Shield:    l.ball.HasShield,
			OnSurface: l.ball.HasSurfaceFriction,
		},
		Energy:    l.energy.Value,
		EnergyMax: l.energy.Max,
		TimeLeft:  l.timeLeft,
		TimeLimit: l.def.TimeLimit,
		Elapsed:   l.elapsed,
		Score:     l.score,
	}

	for _, w := range l.walls {
		s.Walls = append(s.Walls, WallView{
			X: w.Rect.X, Y: w.Rect.Y, W: w.Rect.W, H: w.Rect.H,
			Moving: len(w.Waypoints) >= 2,
		})
	}
	for _, sf := range l.surfaces {
		s.Surfaces = append(s.Surfaces, SurfaceView{
			X: sf.Rect.X, Y: sf.Rect.Y, W: sf.Rect.W, H: sf.Rect.H,
			Friction: sf.Friction,
			Deadly:   sf.Deadly,
		})
	}
	for _, t := range l.targets {
		s.Targets = append(s.Targets, TargetView{
			X: t.Pos.X(), Y: t.Pos.Y(),
			Radius:   t.Radius,
			Required: t.Required,
			Hit:      t.Hit,
		})
	}
	for _, p := range l.powerups {
		remaining := 0.0
		if p.Active() {
			remaining = p.Duration - p.Elapsed
		}
		s.PowerUps = append(s.PowerUps, PowerUpView{
			X: p.Pos.X(), Y: p.Pos.Y(),
			Radius:    p.Radius,
			Kind:      p.Kind.String(),
			Collected: p.Collected,
			Remaining: remaining,
		})
	}
	for _, w := range l.wells {
		s.Wells = append(s.Wells, WellView{
			X: w.Pos.X(), Y: w.Pos.Y(),
			Radius:   w.Radius,
			Strength: w.Strength,
		})
	}
	for _, t := range l.teleporters {
		s.Teleporters = append(s.Teleporters, TeleporterView{
			X: t.Pos.X(), Y: t.Pos.Y(),
			Radius:   t.Radius,
			Pair:     t.PairID,
			Entrance: t.Entrance,
			Cooling:  t.CoolingDown(),
		})
	}
	for _, p := range l.pads {
		s.Pads = append(s.Pads, PadView{
			X: p.Rect.X, Y: p.Rect.Y, W: p.Rect.W, H: p.Rect.H,
			DirX: p.Dir.X(), DirY: p.Dir.Y(),
		})
	}
	return s
}
