package components

import "github.com/yohamta/donburi"

// ClockData is the simulation time base
type ClockData struct {
	Tick int64
	Rate int // ticks per second
}

var Clock = donburi.NewComponentType[ClockData]()

// Now returns simulation seconds since the world was created.
func (c *ClockData) Now() float64 {
	if c.Rate <= 0 {
		return 0
	}
	return float64(c.Tick) / float64(c.Rate)
}

// Delta returns the length of one tick in seconds.
func (c *ClockData) Delta() float64 {
	if c.Rate <= 0 {
		return 0
	}
	return 1 / float64(c.Rate)
}
