package show

// Config is the application configuration, read from a YAML file.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Windows string `yaml:"windows"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`

	Show struct {
		FPS     float64        `yaml:"fps"`
		Windows []WindowConfig `yaml:"windows"`
		Acts    []Act          `yaml:"acts"`
	} `yaml:"show"`
}

// WindowConfig describes the initial state of one remote window.
type WindowConfig struct {
	Name    string  `yaml:"name"`
	ID      uint16  `yaml:"id"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	W       float64 `yaml:"w"`
	H       float64 `yaml:"h"`
	Opacity float64 `yaml:"opacity"`
	Color   string  `yaml:"color"`
}

// Act describes one node of the choreography tree. Action selects the
// kind: move, resize, fade, color and wait are leaves; parallel and
// sequence group the nested Steps.
type Act struct {
	Action   string    `yaml:"action"`
	Window   string    `yaml:"window"`
	To       []float64 `yaml:"to"`
	Opacity  float64   `yaml:"opacity"`
	Color    string    `yaml:"color"`
	Duration float64   `yaml:"duration"`
	Ease     string    `yaml:"ease"`
	Steps    []Act     `yaml:"steps"`
}
