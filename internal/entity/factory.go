package entity

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/tomz197/shooter/internal/event"
	"github.com/tomz197/shooter/internal/weapon"
)

// Factory builds entities wired to one world. Every dependency is passed
// in explicitly; nothing is looked up at runtime.
type Factory struct {
	Host   weapon.Host
	Events *event.Dispatcher
	Logger *log.Logger
	Rand   *rand.Rand

	Asteroid AsteroidConfig
	Enemy    EnemyConfig
	Player   PlayerConfig
}

func (f *Factory) rand() *rand.Rand {
	if f.Rand == nil {
		f.Rand = rand.New(rand.NewSource(1))
	}
	return f.Rand
}

func (f *Factory) logger() *log.Logger {
	if f.Logger == nil {
		return log.Default()
	}
	return f.Logger
}
