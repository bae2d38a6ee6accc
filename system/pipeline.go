package system

// Run executes one tick of every game system in fixed order:
// physics, collisions, detonation, shutdown hooks, then removal of the dead
func Run(c *Context, dt float64) {
	Momentum(c, dt)
	EvadeFix(c, dt)
	Aim(c, dt)
	Overshoot(c, dt)
	Trail(c, dt)
	TargetReached(c, dt)
	Explosions(c, dt)
	Container(c, dt)
	Lifetime(c, dt)

	Collide(c)

	Detonate(c, dt)
	Shutdown(c, dt)
	Prune(c)
}
