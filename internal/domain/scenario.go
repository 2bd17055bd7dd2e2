package domain

// Scenario is a named set of inputs, typically one restaurant group or location mix.
type Scenario struct {
	Name         string `yaml:"name" json:"name"`
	PartialInput `yaml:",inline"`
}

// Configuration is the top-level structure of a scenario file.
type Configuration struct {
	Defaults  *ScenarioDefaults `yaml:"defaults,omitempty" json:"defaults,omitempty"`
	Scenarios []Scenario        `yaml:"scenarios" json:"scenarios"`
}
