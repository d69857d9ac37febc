package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// SeedRoom describes one catalog entry from configuration. A zero
// NightlyRate means "use the tier's default rate".
type SeedRoom struct {
	Number      string
	Type        string
	NightlyRate int64
}

// ServiceConfig holds all configuration for the booking service.
type ServiceConfig struct {
	Port                   string
	AppEnv                 string
	HotelName              string
	HotelAddress           string
	LoyaltyDiscountPercent float64
	KafkaBrokers           []string
	SeedRooms              []SeedRoom
}

// Load reads configuration from the environment (and an optional .env file)
// and returns a ServiceConfig.
func Load() (*ServiceConfig, error) {
	// .env is a development convenience; absence is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVICE_PORT", "8085")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HOTEL_NAME", "Nine Pines Hotel")
	v.SetDefault("HOTEL_ADDRESS", "9 Pine Street, Lakeside")
	v.SetDefault("LOYALTY_DISCOUNT_PERCENT", 5.0)
	v.SetDefault("SEED_ROOMS", "101:S,102:S,201:D,202:D,301:P,302:P")

	port := v.GetString("SERVICE_PORT")
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	discount := v.GetFloat64("LOYALTY_DISCOUNT_PERCENT")
	if discount < 0 || discount >= 100 {
		discount = 5.0
	}

	var brokers []string
	if raw := strings.TrimSpace(v.GetString("KAFKA_BROKERS")); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}

	seedRooms, err := ParseSeedRooms(v.GetString("SEED_ROOMS"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_ROOMS: %w", err)
	}

	return &ServiceConfig{
		Port:                   port,
		AppEnv:                 v.GetString("APP_ENV"),
		HotelName:              v.GetString("HOTEL_NAME"),
		HotelAddress:           v.GetString("HOTEL_ADDRESS"),
		LoyaltyDiscountPercent: discount,
		KafkaBrokers:           brokers,
		SeedRooms:              seedRooms,
	}, nil
}

// ParseSeedRooms parses a comma-separated room list. Each entry is
// "number:type" or "number:type:nightlyRate", e.g. "101:S" or "401:P:30000".
func ParseSeedRooms(raw string) ([]SeedRoom, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var rooms []SeedRoom
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.Split(entry, ":")
		if len(parts) != 2 && len(parts) != 3 {
			return nil, fmt.Errorf("entry %q: want number:type[:rate]", entry)
		}

		seed := SeedRoom{
			Number: strings.TrimSpace(parts[0]),
			Type:   strings.ToUpper(strings.TrimSpace(parts[1])),
		}
		if seed.Number == "" || seed.Type == "" {
			return nil, fmt.Errorf("entry %q: empty number or type", entry)
		}

		if len(parts) == 3 {
			rate, err := strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 64)
			if err != nil || rate <= 0 {
				return nil, fmt.Errorf("entry %q: bad nightly rate", entry)
			}
			seed.NightlyRate = rate
		}

		rooms = append(rooms, seed)
	}
	return rooms, nil
}
