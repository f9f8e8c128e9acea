// Package pricing computes ride fares.
package pricing

import (
	"math"
	"time"

	"ridebook/internal/domain"
)

// Config contains fare configuration (amounts in INR).
type Config struct {
	BaseFare            int     // flat amount added to every fare
	PerKmRate           int     // amount per kilometre
	MinimumFare         int     // floor applied after multipliers
	WaitingChargePerMin int     // policy hook, applied by the caller
	NightChargePercent  int     // policy hook, 10 PM to 6 AM
	PeakHourMultiplier  float64 // policy hook, 8-10 AM and 5-8 PM
	GSTPercent          int     // policy hook
}

// DefaultConfig returns the default fare configuration.
func DefaultConfig() Config {
	return Config{
		BaseFare:            30,
		PerKmRate:           12,
		MinimumFare:         50,
		WaitingChargePerMin: 2,
		NightChargePercent:  20,
		PeakHourMultiplier:  1.2,
		GSTPercent:          5,
	}
}

// Multiplier returns the fare multiplier for a ride type.
// Unknown types fall back to 1.0.
func Multiplier(rideType domain.RideType) float64 {
	switch rideType {
	case domain.RideTypeAuto:
		return 0.8
	case domain.RideTypeMini:
		return 1.0
	case domain.RideTypeSedan:
		return 1.5
	case domain.RideTypeSUV:
		return 2.0
	default:
		return 1.0
	}
}

// Compute returns the base fare for a distance and ride type. Pure and
// deterministic; night, peak and GST adjustments are separate hooks the
// caller applies on top.
func Compute(distanceKm float64, rideType domain.RideType) int {
	return ComputeWithConfig(DefaultConfig(), distanceKm, rideType)
}

// ComputeWithConfig is Compute with an explicit configuration.
func ComputeWithConfig(cfg Config, distanceKm float64, rideType domain.RideType) int {
	raw := float64(cfg.BaseFare) + distanceKm*float64(cfg.PerKmRate)
	fare := int(math.Round(raw * Multiplier(rideType)))

	if fare < cfg.MinimumFare {
		return cfg.MinimumFare
	}
	return fare
}

// WithNightCharge adds the night surcharge when t falls between 10 PM and 6 AM.
func (c Config) WithNightCharge(fare int, t time.Time) int {
	hour := t.Hour()
	if hour >= 22 || hour < 6 {
		return fare + int(math.Round(float64(fare)*float64(c.NightChargePercent)/100))
	}
	return fare
}

// WithPeakCharge applies the peak-hour multiplier during 8-10 AM and 5-8 PM.
func (c Config) WithPeakCharge(fare int, t time.Time) int {
	hour := t.Hour()
	if (hour >= 8 && hour < 10) || (hour >= 17 && hour < 20) {
		return int(math.Round(float64(fare) * c.PeakHourMultiplier))
	}
	return fare
}

// WithGST adds GST on top of the fare.
func (c Config) WithGST(fare int) int {
	return fare + int(math.Round(float64(fare)*float64(c.GSTPercent)/100))
}

// WaitingCharge returns the charge for the given waiting time.
func (c Config) WaitingCharge(waited time.Duration) int {
	minutes := int(waited.Minutes())
	if minutes < 0 {
		minutes = 0
	}
	return minutes * c.WaitingChargePerMin
}
