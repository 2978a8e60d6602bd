package conf

// Store reads and writes a Config
type Store interface {
	Open() (*Config, error)
	Save(*Config) error
}
