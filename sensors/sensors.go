// Package sensors simulates a robot's dual sensor suite, a ring of LIDAR
// range readings plus an RGB camera, and checks each timestamp's data
// for validity, obstacles and lighting.
package sensors

import (
	"math/rand/v2"
)

// Sensor limits and thresholds.
const (
	NumTimestamps      = 5
	LidarReadingsCount = 8

	LidarMinRange     = 0.01 // meters
	LidarMaxRange     = 10.0 // meters
	LidarMinValid     = 0.05 // a reading at or below this is a fault
	ObstacleThreshold = 2.0  // meters

	RGBMin = 0
	RGBMax = 255

	BrightnessThreshold = 20.0  // darker frames are unusable
	DayNightThreshold   = 100.0 // brighter frames are daytime
)

// Camera is one RGB frame average.
type Camera struct {
	R, G, B int
}

// Brightness is the mean of the three channels.
func (c Camera) Brightness() float64 {
	return float64(c.R+c.G+c.B) / 3
}

// InRange reports whether every channel is within [RGBMin, RGBMax].
func (c Camera) InRange() bool {
	for _, v := range []int{c.R, c.G, c.B} {
		if v < RGBMin || v > RGBMax {
			return false
		}
	}
	return true
}

// Reading is the raw sensor data captured at one timestamp.
type Reading struct {
	Timestamp int
	Lidar     []float64
	Camera    Camera
}

// Generate returns n readings with timestamps 0..n-1. LIDAR distances are
// uniform in [LidarMinRange, LidarMaxRange] and camera channels uniform in
// [RGBMin, RGBMax].
func Generate(rng *rand.Rand, n int) []Reading {
	readings := make([]Reading, 0, n)
	for ts := 0; ts < n; ts++ {
		lidar := make([]float64, LidarReadingsCount)
		for i := range lidar {
			lidar[i] = LidarMinRange + rng.Float64()*(LidarMaxRange-LidarMinRange)
		}
		readings = append(readings, Reading{
			Timestamp: ts,
			Lidar:     lidar,
			Camera: Camera{
				R: RGBMin + rng.IntN(RGBMax-RGBMin+1),
				G: RGBMin + rng.IntN(RGBMax-RGBMin+1),
				B: RGBMin + rng.IntN(RGBMax-RGBMin+1),
			},
		})
	}
	return readings
}

// Result is the processed outcome of one Reading.
type Result struct {
	Timestamp int

	LidarValid      bool
	AverageDistance float64 // meaningful only when LidarValid
	Obstacles       int     // readings closer than ObstacleThreshold

	CameraValid bool
	Brightness  float64
	Day         bool // meaningful only when CameraValid
}

// Process checks one reading. LIDAR data is valid when it has readings and
// every one is above LidarMinValid. Camera data is valid when every channel
// is in range and the frame is brighter than BrightnessThreshold.
func Process(r Reading) Result {
	res := Result{Timestamp: r.Timestamp}

	res.LidarValid = len(r.Lidar) > 0
	var sum float64
	for _, d := range r.Lidar {
		if d <= LidarMinValid {
			res.LidarValid = false
		}
		if d < ObstacleThreshold {
			res.Obstacles++
		}
		sum += d
	}
	if res.LidarValid {
		res.AverageDistance = sum / float64(len(r.Lidar))
	} else {
		res.Obstacles = 0
	}

	res.Brightness = r.Camera.Brightness()
	res.CameraValid = r.Camera.InRange() && res.Brightness > BrightnessThreshold
	res.Day = res.CameraValid && res.Brightness > DayNightThreshold
	return res
}

// ProcessAll processes every reading in order.
func ProcessAll(readings []Reading) []Result {
	results := make([]Result, 0, len(readings))
	for _, r := range readings {
		results = append(results, Process(r))
	}
	return results
}

// Summary aggregates results across timestamps. Averages and obstacle
// counts only include valid data; day and night are only counted for
// valid camera frames.
type Summary struct {
	LidarTotal  int
	LidarValid  int
	CameraTotal int
	CameraValid int

	Obstacles         int
	AverageDistance   float64
	AverageBrightness float64

	DayCount   int
	NightCount int
}

// Summarize aggregates results.
func Summarize(results []Result) Summary {
	var s Summary
	var distance, brightness float64
	for _, r := range results {
		s.LidarTotal++
		s.CameraTotal++
		if r.LidarValid {
			s.LidarValid++
			s.Obstacles += r.Obstacles
			distance += r.AverageDistance
		}
		if r.CameraValid {
			s.CameraValid++
			brightness += r.Brightness
			if r.Day {
				s.DayCount++
			} else {
				s.NightCount++
			}
		}
	}
	if s.LidarValid > 0 {
		s.AverageDistance = distance / float64(s.LidarValid)
	}
	if s.CameraValid > 0 {
		s.AverageBrightness = brightness / float64(s.CameraValid)
	}
	return s
}

// LidarReliability is the percentage of valid LIDAR readings.
func (s Summary) LidarReliability() float64 {
	return percent(s.LidarValid, s.LidarTotal)
}

// CameraReliability is the percentage of valid camera readings.
func (s Summary) CameraReliability() float64 {
	return percent(s.CameraValid, s.CameraTotal)
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
