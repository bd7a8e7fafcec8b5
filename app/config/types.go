package config

// Source describes one configured content origin. It is created from the
// sources file and never mutated afterwards.
type Source struct {
	Name string   `yaml:"name"`
	RSS  string   `yaml:"rss"`
	Site string   `yaml:"site,omitempty"`
	Tags []string `yaml:"tags,omitempty"`
}

type sourcesFile struct {
	Sources []Source `yaml:"sources"`
}
