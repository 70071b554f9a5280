package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render/update layer used by every scene world.
const Default ecs.LayerID = 0

// GardenConfig contains all tunables for the Garden physics toy
type GardenConfig struct {
	// Ball
	BallRadius   float64
	Acceleration float64 // per active direction per frame
	JumpSpeed    float64 // vertical launch velocity (negative is up)
	MaxJumps     int
	StartJumps   int

	// Physics
	Gravity       float64
	Friction      float64 // horizontal velocity multiplier per frame
	Bounce        float64
	WallDamping   float64 // horizontal velocity multiplier on wall contact
	RestFactor    float64 // |vy| < Gravity*RestFactor snaps to rest
	FloorInset    float64 // floor sits this far above the bottom edge
	CaptureDepth  float64 // minimum depth below a platform top that still lands
	CaptureMargin float64 // added to vy when computing capture depth

	// Platforms, as fractions of the canvas (X, Y, W)
	Platforms         []PlatformLayout
	PlatformThickness float64

	// Seeds
	SeedCount       int
	SeedMarginX     float64 // x = rand*(w-2*margin)+margin
	SeedTop         float64 // y = rand*(h*SeedBand)+SeedTop
	SeedBand        float64
	PickupPadding   float64 // added to the ball radius
	SeedRespawnMs   float64
	SeedFloatAmp    float64
	SeedFloatPeriod float64
	SeedSpinPeriod  float64
	SeedHaloRadius  float64
	SeedHaloPulse   float64
	SeedHaloPeriod  float64

	// Flowers
	FlowerChance      float64 // probability of a flower per hard landing
	FlowerImpactSpeed float64 // |vy| after bounce must exceed this
	FlowerMaxAge      int
	FlowerGrowFrames  int
	FlowerFadeFrames  int
	FlowerKinds       int
	FlowerMinScale    float64
	FlowerScaleRange  float64
	FlowerLineWidth   float64

	// Butterfly
	ButterflyStartX     float64
	ButterflyLift       float64 // pursuit target sits this far above the ball
	ButterflyGain       float64
	ButterflyMaxSpeed   float64
	ButterflyDrag       float64 // velocity multiplier when over MaxSpeed
	ButterflyTimerStep  float64
	ButterflyFlutter    float64
	ButterflyOffscreen  float64 // distance beyond the edges that counts as lost
	ButterflyRespawnGap float64 // respawn this far above the ball

	// Session control
	WheelExitDelta float64

	// Colors
	Palette         []color.RGBA
	BallColor       color.RGBA
	InkColor        color.RGBA
	WingColor       color.RGBA
	HaloColor       color.RGBA
	BackgroundColor color.RGBA
}

// PlatformLayout positions a platform relative to the canvas size
type PlatformLayout struct {
	X, Y, W float64
}

// FieldConfig contains the Attention-Field grid tunables
type FieldConfig struct {
	Gap             float64
	CellSize        float64
	Radius          float64 // pointer influence radius
	StretchX        float64 // ScaleX = 1 + StretchX*intensity
	SquashY         float64 // ScaleY = 1 - SquashY*intensity
	SwayAmplitude   float64
	SwayIndexFactor float64
	OffscreenX      float64 // pointer sentinel when absent
	OffscreenY      float64
	CrosshairSize   float64
	CrosshairWidth  float64

	CellColor       color.RGBA
	CrosshairColor  color.RGBA
	BackgroundColor color.RGBA
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	StartGarden bool // Open straight into the Garden, ignoring the saved tab
}

// Global configuration instances
var C *Config
var Garden GardenConfig
var Field FieldConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Ink    = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 255}
	Signal = color.RGBA{R: 0xFF, G: 0x44, B: 0x00, A: 255}
	Paper  = color.RGBA{R: 0xF6, G: 0xF6, B: 0xF4, A: 255}
	Bone   = color.RGBA{R: 0xF0, G: 0xF0, B: 0xEE, A: 255}
	Muted  = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 255}
	Black  = color.RGBA{A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "poetics lab",
	}

	Garden = GardenConfig{
		BallRadius:   6,
		Acceleration: 0.6,
		JumpSpeed:    -14,
		MaxJumps:     2,
		StartJumps:   0,

		Gravity:       0.6,
		Friction:      0.92,
		Bounce:        0.5,
		WallDamping:   -0.5,
		RestFactor:    3,
		FloorInset:    100,
		CaptureDepth:  15,
		CaptureMargin: 5,

		Platforms: []PlatformLayout{
			{X: 0.1, Y: 0.75, W: 0.25},
			{X: 0.55, Y: 0.65, W: 0.3},
			{X: 0.2, Y: 0.5, W: 0.2},
			{X: 0.6, Y: 0.35, W: 0.25},
			{X: 0.3, Y: 0.25, W: 0.15},
		},
		PlatformThickness: 2,

		SeedCount:       4,
		SeedMarginX:     30,
		SeedTop:         50,
		SeedBand:        0.6,
		PickupPadding:   20,
		SeedRespawnMs:   1000,
		SeedFloatAmp:    5,
		SeedFloatPeriod: 40,
		SeedSpinPeriod:  100,
		SeedHaloRadius:  20,
		SeedHaloPulse:   5,
		SeedHaloPeriod:  15,

		FlowerChance:      0.6,
		FlowerImpactSpeed: 1,
		FlowerMaxAge:      400,
		FlowerGrowFrames:  30,
		FlowerFadeFrames:  100,
		FlowerKinds:       5,
		FlowerMinScale:    0.5,
		FlowerScaleRange:  0.5,
		FlowerLineWidth:   1.5,

		ButterflyStartX:     -50,
		ButterflyLift:       60,
		ButterflyGain:       0.002,
		ButterflyMaxSpeed:   4,
		ButterflyDrag:       0.9,
		ButterflyTimerStep:  0.1,
		ButterflyFlutter:    0.5,
		ButterflyOffscreen:  100,
		ButterflyRespawnGap: 100,

		WheelExitDelta: 50,

		Palette: []color.RGBA{
			{R: 0xFF, G: 0x44, B: 0x00, A: 255},
			{R: 0x9B, G: 0x4D, B: 0xCA, A: 255},
			{R: 0x00, G: 0x70, B: 0xF3, A: 255},
			{R: 0xFF, G: 0xD7, B: 0x00, A: 255},
			{R: 0x10, G: 0xB9, B: 0x81, A: 255},
		},
		BallColor:       Signal,
		InkColor:        Ink,
		WingColor:       color.RGBA{R: 0xFF, G: 0xB3, B: 0x00, A: 255},
		HaloColor:       HaloTint,
		BackgroundColor: Paper,
	}

	Field = FieldConfig{
		Gap:             40,
		CellSize:        12,
		Radius:          400,
		StretchX:        2,
		SquashY:         0.7,
		SwayAmplitude:   0.1,
		SwayIndexFactor: 0.1,
		OffscreenX:      -1000,
		OffscreenY:      -1000,
		CrosshairSize:   10,
		CrosshairWidth:  2,

		CellColor:       Ink,
		CrosshairColor:  Signal,
		BackgroundColor: Bone,
	}
}
