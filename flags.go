package main

import (
	"flag"
	"time"

	"github.com/MarcBasas/constellations/internal/config"
)

var (
	// debugFlag enables the FPS and population overlay.
	debugFlag = flag.Bool("debug", false, "show FPS, particle and edge counts")

	// seedFlag seeds the spawn RNG; 0 picks one from the clock.
	seedFlag = flag.Int64("seed", 0, "random seed for particle spawns (0 = time based)")

	// toneFlag enables the ambient drone.
	toneFlag = flag.Bool("tone", false, "play an ambient tone that follows the constellation")

	toneHzFlag = flag.Float64("tone-hz", config.DroneFrequency, "base frequency of the ambient tone in Hz")

	// scaleFlag multiplies the window size.
	scaleFlag = flag.Float64("scale", 1, "window scale factor")

	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this file")
)

func seed() int64 {
	if *seedFlag != 0 {
		return *seedFlag
	}
	return time.Now().UnixNano()
}
