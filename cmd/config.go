package cmd

import "time"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	GeocoderURL       string
	GeocoderUserAgent string
	GeocoderTimeout   time.Duration

	OverpassURL               string
	RoadGraphTTL              time.Duration
	RoadGraphEvictionSchedule string

	LogLevel string
}
