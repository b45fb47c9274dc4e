package app

// Config tunes the session service.
type Config struct {
	// SubscriberBuffer is the channel size handed to each subscriber.
	SubscriberBuffer int `env:"REVERSI_SUBSCRIBER_BUFFER" envDefault:"1"`
	// MaxGames caps registered sessions; zero means no limit.
	MaxGames int `env:"REVERSI_MAX_GAMES" envDefault:"0"`
}

// DefaultConfig matches the envDefault tags.
func DefaultConfig() Config {
	return Config{SubscriberBuffer: 1}
}
