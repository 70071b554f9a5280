package config

// TabID identifies a lab prototype tab
type TabID int

const (
	TabIconoclast TabID = iota
	TabGarden
	TabField
	TabCount
)

// TabInfo is the label set shown for a prototype tab
type TabInfo struct {
	Label    string
	Title    string
	Subtitle string
}

// LabConfig contains the lab shell copy and settings defaults
type LabConfig struct {
	Tabs       map[TabID]TabInfo
	DefaultTab TabID
	AppName    string // gdata storage namespace

	GardenCTATitle string
	GardenCTABody  string
	GardenCTAStart string
	GardenHint     string
	GardenExit     string

	IconoclastPlaceholder string
	IconoclastIdle        string
	IconoclastThinking    string
	IconoclastEmpty       string
	IconoclastFailure     string
	IconoclastMinDelayMs  int
	IconoclastWrapColumns int

	ProxyURLEnv     string
	DefaultProxyURL string

	VolumeSteps []float64
}

// Lab is the global lab shell configuration
var Lab LabConfig

func init() {
	Lab = LabConfig{
		Tabs: map[TabID]TabInfo{
			TabIconoclast: {Label: "Prototype 001", Title: "The Iconoclast", Subtitle: "History of Design Disruption"},
			TabGarden:     {Label: "Prototype 002", Title: "The Garden", Subtitle: "Ludic Growth System"},
			TabField:      {Label: "Field", Title: "Community Lab", Subtitle: "Attention Field"},
		},
		DefaultTab: TabIconoclast,
		AppName:    "poetics",

		GardenCTATitle: "Prototype 002: The Garden",
		GardenCTABody:  "A generative platformer. Collect seeds, grow procedural flora, and find the butterfly.",
		GardenCTAStart: "Enter Garden",
		GardenHint:     "Scroll to Exit • Arrows to Move • Space for Double Jump",
		GardenExit:     "Exit Garden",

		IconoclastPlaceholder: "Enter an archetype (e.g., 'chair', 'clock', 'lamp')",
		IconoclastIdle:        "awaiting archetype to deconstruct...",
		IconoclastThinking:    "consulting the archive...",
		IconoclastEmpty:       "silence returned.",
		IconoclastFailure:     "static noise. connection interrupted.",
		IconoclastMinDelayMs:  800,
		IconoclastWrapColumns: 64,

		ProxyURLEnv:     "POETICS_PROXY_URL",
		DefaultProxyURL: "http://localhost:8787",

		VolumeSteps: []float64{0, 0.25, 0.5, 0.75, 1.0},
	}
}
