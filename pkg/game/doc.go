// Package game is the composition root of a practice session. It assembles
// the technique table, the session engine and the scheduler from
// configuration and exposes them through a frontend-agnostic API.
// Frontends send commands to Game, observe changes through its EventBus, and
// re-render from the snapshot each event carries.
package game
