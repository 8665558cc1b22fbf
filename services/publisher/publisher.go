package publisher

// Publisher represents a sink for scraped tool records
type Publisher interface {
	// Publish appends message to the stream under field key
	Publish(key string, message []byte) error

	// TrimStreams trims the stream to the configured maximum length
	TrimStreams() error

	// Close closes the publisher connection
	Close() error
}
