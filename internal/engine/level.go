package engine

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/inertia/internal/config"
	"github.com/vovakirdan/inertia/internal/core"
	"github.com/vovakirdan/inertia/internal/geom"
)

// State is the level lifecycle state.
type State int

const (
	StatePlaying State = iota
	StatePaused
	StateComplete
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateComplete:
		return "complete"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the per-tick transition signal returned by Step.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeComplete
	OutcomeFailed
)

// StepResult carries the tick's transition signal plus the side effects
// that occurred during it.
type StepResult struct {
	Outcome Outcome
	Events  []Event
}

// Summary is the terse record of a finished (or in-progress) run,
// consumed by the scoreboard and persistence layers.
type Summary struct {
	Level       string  `json:"level"`
	Completed   bool    `json:"completed"`
	Elapsed     float64 `json:"elapsed"`
	TimeLeft    float64 `json:"time_left"`
	Energy      float64 `json:"energy"`
	Score       int     `json:"score"`
	OptionalHit int     `json:"optional_hit"`
	PowerUps    int     `json:"powerups"`
	Stars       int     `json:"stars"`
}

// Entity sizing defaults applied when a definition omits a radius.
const (
	defaultBallRadius       = 15
	defaultTargetRadius     = 10
	defaultPowerUpRadius    = 12
	defaultTeleporterRadius = 18
	defaultTeleporterDelay  = 1.0
	defaultPadStrength      = 1.5
	defaultPadCooldown      = 0.5
)

// Scoring values.
const (
	targetScore   = 100
	optionalBonus = 150
	powerUpScore  = 50
)

// Level is the per-level orchestrator: it owns the ball, all obstacle
// collections and the energy meter, and advances them in a fixed order
// once per tick. It is strictly single-threaded; Step must never be
// re-entered concurrently on the same instance.
type Level struct {
	def Definition
	cfg config.Config
	log *log.Logger

	state State
	tick  uint64

	ball   *Ball
	energy EnergyMeter

	walls       []*Wall
	surfaces    []*Surface
	targets     []*Target
	powerups    []*PowerUp
	wells       []*GravityWell
	teleporters []*Teleporter
	pads        []*BouncePad

	elapsed  float64
	timeLeft float64

	score         int
	optionalHit   int
	powerUpsTaken int

	// Effect state recomputed every tick from active power-ups.
	timeScale    float64
	gravityField bool
	magnetField  bool

	hasRequired bool
	warnedPairs map[int]bool
}

// NewLevel validates the definition and builds a fresh level instance in
// the Playing state. Soft authoring defects (no required targets, half a
// teleporter pair) are logged, not rejected.
func NewLevel(def Definition, cfg config.Config, logger *log.Logger) (*Level, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}

	l := &Level{
		def: def,
		cfg: cfg,
		log: logger,
	}
	l.build()

	if !l.hasRequired {
		logger.Warn("level has no required targets and can never complete",
			"level", def.Name)
	}
	for _, t := range l.teleporters {
		if t.Entrance && l.pairExit(t) == nil {
			logger.Warn("teleporter has no paired exit; entries will be ignored",
				"level", def.Name, "pair", t.PairID)
		}
	}
	return l, nil
}

// build constructs all runtime entities from the stored definition. Run
// at creation and again on Reset.
func (l *Level) build() {
	d := &l.def

	radius := d.BallRadius
	if radius <= 0 {
		radius = defaultBallRadius
	}
	l.ball = NewBall(geom.V(d.StartX, d.StartY), radius, l.cfg.Physics)
	l.energy = NewEnergyMeter(l.cfg.Energy, d.PassiveDrain, l.cfg.Physics.RateScale)

	l.walls = make([]*Wall, 0, len(d.Walls))
	for _, wd := range d.Walls {
		w := &Wall{
			Rect:  geom.Rect{X: wd.X, Y: wd.Y, W: wd.W, H: wd.H},
			Speed: wd.Speed,
		}
		for _, p := range wd.Waypoints {
			w.Waypoints = append(w.Waypoints, geom.V(p.X, p.Y))
		}
		if len(w.Waypoints) > 0 {
			w.Rect.X, w.Rect.Y = w.Waypoints[0].X(), w.Waypoints[0].Y()
		}
		l.walls = append(l.walls, w)
	}

	l.surfaces = make([]*Surface, 0, len(d.Surfaces))
	for _, sd := range d.Surfaces {
		friction := sd.Friction
		if friction == 0 {
			if f, ok := PresetFriction(sd.Preset); ok {
				friction = f
			} else {
				friction = l.cfg.Physics.Friction
			}
		}
		l.surfaces = append(l.surfaces, &Surface{
			Rect:     geom.Rect{X: sd.X, Y: sd.Y, W: sd.W, H: sd.H},
			Friction: friction,
			Deadly:   sd.Preset == SurfaceDeadly,
			Boost:    geom.V(sd.BoostX, sd.BoostY),
		})
	}

	l.hasRequired = false
	l.targets = make([]*Target, 0, len(d.Targets))
	for _, td := range d.Targets {
		r := td.Radius
		if r <= 0 {
			r = defaultTargetRadius
		}
		if td.Required {
			l.hasRequired = true
		}
		l.targets = append(l.targets, &Target{
			Pos:      geom.V(td.X, td.Y),
			Radius:   r,
			Required: td.Required,
			Points:   td.Points,
		})
	}

	l.powerups = make([]*PowerUp, 0, len(d.PowerUps))
	for _, pd := range d.PowerUps {
		kind, _ := ParsePowerUpKind(pd.Kind)
		r := pd.Radius
		if r <= 0 {
			r = defaultPowerUpRadius
		}
		duration := pd.Duration
		if duration == 0 {
			duration = l.defaultDuration(kind)
		}
		l.powerups = append(l.powerups, &PowerUp{
			Pos:      geom.V(pd.X, pd.Y),
			Radius:   r,
			Kind:     kind,
			Duration: duration,
		})
	}

	l.wells = make([]*GravityWell, 0, len(d.Wells))
	for _, wd := range d.Wells {
		l.wells = append(l.wells, &GravityWell{
			Pos:      geom.V(wd.X, wd.Y),
			Radius:   wd.Radius,
			Strength: wd.Strength,
		})
	}

	l.teleporters = make([]*Teleporter, 0, len(d.Teleporters))
	for _, td := range d.Teleporters {
		r := td.Radius
		if r <= 0 {
			r = defaultTeleporterRadius
		}
		cd := td.Cooldown
		if cd <= 0 {
			cd = defaultTeleporterDelay
		}
		l.teleporters = append(l.teleporters, &Teleporter{
			Pos:      geom.V(td.X, td.Y),
			Radius:   r,
			PairID:   td.Pair,
			Entrance: td.Entrance,
			Cooldown: cd,
		})
	}

	l.pads = make([]*BouncePad, 0, len(d.Pads))
	for _, pd := range d.Pads {
		strength := pd.Strength
		if strength <= 0 {
			strength = defaultPadStrength
		}
		cd := pd.Cooldown
		if cd <= 0 {
			cd = defaultPadCooldown
		}
		l.pads = append(l.pads, &BouncePad{
			Rect:     geom.Rect{X: pd.X, Y: pd.Y, W: pd.W, H: pd.H},
			Dir:      geom.V(pd.DirX, pd.DirY),
			Strength: strength,
			Cooldown: cd,
		})
	}

	l.state = StatePlaying
	l.tick = 0
	l.elapsed = 0
	l.timeLeft = d.TimeLimit
	l.score = 0
	l.optionalHit = 0
	l.powerUpsTaken = 0
	l.timeScale = 1
	l.gravityField = false
	l.magnetField = false
	l.warnedPairs = make(map[int]bool)
}

func (l *Level) defaultDuration(kind PowerUpKind) float64 {
	switch kind {
	case PowerSpeed:
		return l.cfg.Effects.DurationSpeed
	case PowerShield:
		return l.cfg.Effects.DurationShield
	case PowerGravity:
		return l.cfg.Effects.DurationGravity
	case PowerTime:
		return l.cfg.Effects.DurationTime
	case PowerMagnetic:
		return l.cfg.Effects.DurationMagnetic
	default:
		return 0 // Instantaneous
	}
}

// Reset rebuilds the level from its definition, back to the Playing state.
func (l *Level) Reset() {
	l.build()
}

// Name returns the definition's level name.
func (l *Level) Name() string { return l.def.Name }

// State returns the current lifecycle state.
func (l *Level) State() State { return l.state }

// Pause suspends simulation time. No-op outside the Playing state.
func (l *Level) Pause() {
	if l.state == StatePlaying {
		l.state = StatePaused
	}
}

// Resume returns a paused level to play.
func (l *Level) Resume() {
	if l.state == StatePaused {
		l.state = StatePlaying
	}
}

// Step advances the simulation by dt seconds. The ordering of phases
// inside is fixed; reordering changes observable gameplay.
func (l *Level) Step(in core.InputFrame, dt float64) StepResult {
	switch l.state {
	case StatePaused:
		return StepResult{Outcome: OutcomeContinue}
	case StateComplete:
		return StepResult{Outcome: OutcomeComplete}
	case StateFailed:
		return StepResult{Outcome: OutcomeFailed}
	}

	l.tick++
	l.elapsed += dt
	var events []Event

	// 1. Time budget
	if l.def.TimeLimit > 0 {
		l.timeLeft -= dt
		if l.timeLeft <= 0 {
			l.timeLeft = 0
			return l.fail(events)
		}
	}

	// 2. Energy-gated input
	if in.Has(core.ActionBrake) && l.ball.Speed() > 0 && l.energy.SpendBrake() {
		l.ball.Stop()
	}
	dx, dy := in.Direction()
	if force, ok := l.energy.ApplyInput(dx, dy, dt); ok {
		l.ball.ApplyForce(force)
	}

	// 3. Power-up effect clocks, expiry resets, then recompute the
	// effect state from whatever is still active. Recomputing from
	// scratch is the symmetric reset: an expired effect simply stops
	// contributing.
	for _, p := range l.powerups {
		if p.Advance(dt) {
			events = append(events, Event{
				Kind:    EventEffectOver,
				Pos:     p.Pos,
				PowerUp: p.Kind,
			})
		}
	}
	baseFriction := l.cfg.Physics.Friction
	l.ball.SpeedMultiplier = 1
	l.ball.HasShield = false
	l.timeScale = 1
	l.gravityField = false
	l.magnetField = false
	for _, p := range l.powerups {
		if !p.Active() {
			continue
		}
		switch p.Kind {
		case PowerSpeed:
			baseFriction = l.cfg.Effects.SpeedFriction
			l.ball.SpeedMultiplier = l.cfg.Effects.SpeedMultiplier
		case PowerShield:
			l.ball.HasShield = true
		case PowerTime:
			l.timeScale = l.cfg.Effects.TimeFactor
		case PowerGravity:
			l.gravityField = true
		case PowerMagnetic:
			l.magnetField = true
		}
	}

	// 4. Global fields move un-hit targets toward the ball
	if l.gravityField {
		l.pullTargets(l.cfg.Effects.GravityRadius, l.cfg.Effects.GravityStrength, dt)
	}
	if l.magnetField {
		l.pullTargets(l.cfg.Effects.MagnetRadius, l.cfg.Effects.MagnetStrength, dt)
	}

	// 5. Surface resolve. Overlapping zones: later zones in definition
	// order win the friction override. Deadly membership ends the run.
	friction := baseFriction
	l.ball.HasSurfaceFriction = false
	for _, s := range l.surfaces {
		inside, boosted := s.Check(l.ball)
		if !inside {
			continue
		}
		if s.Deadly {
			events = append(events, Event{Kind: EventDeadly, Pos: l.ball.Pos})
			return l.fail(events)
		}
		friction = s.Friction
		l.ball.SurfaceFriction = s.Friction
		l.ball.HasSurfaceFriction = true
		if boosted {
			events = append(events, Event{
				Kind:      EventSurfaceBoost,
				Pos:       l.ball.Pos,
				Magnitude: s.Boost.Len(),
			})
		}
	}

	// 6. Integrate
	l.ball.Update(dt, friction, l.timeScale)

	// 7. Gravity wells
	for _, w := range l.wells {
		w.ApplyForce(l.ball, l.cfg.Physics.MaxWellForce)
	}

	// 8. Collisions: pads, teleporters, walls, power-ups, targets.
	// Clocks (pad and teleporter cooldowns, wall patrols) advance every
	// tick; a teleport truncates only the remaining collision checks.
	for _, p := range l.pads {
		p.Update(dt)
		if ev, hit := p.CheckCollision(l.ball, l.cfg.Physics); hit {
			events = append(events, ev)
		}
	}

	teleported := false
	for _, t := range l.teleporters {
		t.Update(dt)
	}
	for _, w := range l.walls {
		w.Update(dt)
	}
	for _, t := range l.teleporters {
		if teleported || !t.Contact(l.ball) {
			continue
		}
		exit := l.pairExit(t)
		if exit == nil {
			if !l.warnedPairs[t.PairID] {
				l.log.Warn("teleporter fired with no paired exit",
					"level", l.def.Name, "pair", t.PairID)
				l.warnedPairs[t.PairID] = true
			}
			continue
		}
		l.ball.Teleport(exit.Pos)
		l.ball.Vel = l.ball.Vel.Mul(l.cfg.Physics.TeleportBonus)
		l.ball.ClampSpeed()
		t.StartCooldown()
		exit.StartCooldown()
		events = append(events, Event{
			Kind:      EventTeleport,
			Pos:       exit.Pos,
			Magnitude: l.ball.Speed(),
		})
		teleported = true
	}

	if !teleported {
		absorb := l.ball.HasShield
		for _, w := range l.walls {
			ev, hit := w.CheckCollision(l.ball, l.cfg.Physics, absorb)
			if !hit {
				continue
			}
			events = append(events, ev)
			if absorb {
				l.consumeShield()
				absorb = false
			}
		}

		for _, p := range l.powerups {
			if !p.CheckCollision(l.ball) {
				continue
			}
			l.score += powerUpScore
			l.powerUpsTaken++
			if p.Kind == PowerEnergy {
				l.energy.Refill(l.cfg.Effects.EnergyRefill)
				p.Consume()
			}
			events = append(events, Event{
				Kind:    EventPowerUp,
				Pos:     p.Pos,
				PowerUp: p.Kind,
			})
		}

		for _, t := range l.targets {
			if !t.CheckCollision(l.ball) {
				continue
			}
			points := t.Points
			if points <= 0 {
				points = targetScore
			}
			l.score += points
			if !t.Required {
				l.score += optionalBonus
				l.optionalHit++
			}
			events = append(events, Event{
				Kind:      EventTargetHit,
				Pos:       t.Pos,
				Magnitude: float64(points),
			})
		}
	}

	// 9. Bounds clamp with a lossy bounce
	if ev, clamped := l.clampToBounds(); clamped {
		events = append(events, ev)
	}

	// 10. Completion, after all of this tick's collisions
	if l.complete() {
		l.state = StateComplete
		return StepResult{Outcome: OutcomeComplete, Events: events}
	}
	return StepResult{Outcome: OutcomeContinue, Events: events}
}

// pullTargets draws every un-hit target toward the ball with linear
// falloff inside the field radius.
func (l *Level) pullTargets(radius, strength, dt float64) {
	for _, t := range l.targets {
		if t.Hit {
			continue
		}
		delta := l.ball.Pos.Sub(t.Pos)
		dist := delta.Len()
		if dist >= radius || dist <= 0 {
			continue
		}
		pull := strength * (1 - dist/radius)
		dir := delta.Mul(1 / dist)
		t.Pos = t.Pos.Add(dir.Mul(pull * dt * l.cfg.Physics.RateScale))
	}
}

// consumeShield spends the active shield power-up backing the ball's
// shield flag.
func (l *Level) consumeShield() {
	l.ball.HasShield = false
	for _, p := range l.powerups {
		if p.Kind == PowerShield && p.Active() {
			p.Consume()
			return
		}
	}
}

// pairExit returns the other end of t's pair, or nil when the pair is
// incomplete.
func (l *Level) pairExit(t *Teleporter) *Teleporter {
	for _, other := range l.teleporters {
		if other != t && other.PairID == t.PairID {
			return other
		}
	}
	return nil
}

// clampToBounds keeps the ball inside the playfield. An out-of-bounds
// position is snapped to the edge and the exiting velocity component is
// halved and flipped.
func (l *Level) clampToBounds() (Event, bool) {
	b := l.ball
	damp := l.cfg.Physics.BoundaryDamping
	x, y := b.Pos.X(), b.Pos.Y()
	vx, vy := b.Vel.X(), b.Vel.Y()
	clamped := false

	if x < b.Radius {
		x, vx, clamped = b.Radius, -vx*damp, true
	} else if x > l.def.Width-b.Radius {
		x, vx, clamped = l.def.Width-b.Radius, -vx*damp, true
	}
	if y < b.Radius {
		y, vy, clamped = b.Radius, -vy*damp, true
	} else if y > l.def.Height-b.Radius {
		y, vy, clamped = l.def.Height-b.Radius, -vy*damp, true
	}

	if !clamped {
		return Event{}, false
	}
	b.Pos = geom.V(x, y)
	b.Vel = geom.V(vx, vy)
	return Event{Kind: EventBoundary, Pos: b.Pos, Magnitude: b.Speed()}, true
}

// complete reports whether every required target has been hit. A level
// without required targets never completes; that defect is logged at
// construction, not silently patched here.
func (l *Level) complete() bool {
	if !l.hasRequired {
		return false
	}
	for _, t := range l.targets {
		if t.Required && !t.Hit {
			return false
		}
	}
	return true
}

func (l *Level) fail(events []Event) StepResult {
	l.state = StateFailed
	return StepResult{Outcome: OutcomeFailed, Events: events}
}

// Summary reports the run's current totals. Valid at any time; the
// Completed flag reflects the terminal state only.
func (l *Level) Summary() Summary {
	return Summary{
		Level:       l.def.Name,
		Completed:   l.state == StateComplete,
		Elapsed:     l.elapsed,
		TimeLeft:    l.timeLeft,
		Energy:      l.energy.Value,
		Score:       l.score,
		OptionalHit: l.optionalHit,
		PowerUps:    l.powerUpsTaken,
		Stars:       l.stars(),
	}
}

// stars rates a run 1..3: everyone gets one star for finishing, a second
// for keeping a third of the clock, a third for keeping half the energy.
// Untimed levels always earn the time star.
func (l *Level) stars() int {
	stars := 1
	if l.def.TimeLimit <= 0 || l.timeLeft/l.def.TimeLimit > 0.33 {
		stars++
	}
	if l.energy.Max > 0 && l.energy.Value/l.energy.Max > 0.5 {
		stars++
	}
	return stars
}
