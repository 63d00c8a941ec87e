package config

import "github.com/wizzomafizzo/slideprops/internal/constants"

// DefaultSlides lists the slides that still render SlideContainer without the
// home navigation callback, in processing order.
func DefaultSlides() []string {
	return []string{
		"slide-intel-divider",
		"slide-ngfw",
		"slide-sdwan-metrics",
		"slide-ot-security",
		"slide-dashboard",
		"slide-zero-trust",
		"slide-cloud-security",
		"slide-profund-metrics",
		"slide-ai-overview",
		"slide-category-performance",
		"slide-backlinks",
		"slide-competitive-intel",
		"slide-keyword-gap",
		"slide-thank-you",
	}
}

// DefaultConfig returns the default slideprops configuration
func DefaultConfig() *Config {
	return &Config{
		BasePath:  constants.DefaultBasePath,
		Extension: constants.DefaultExtension,
		Slides:    DefaultSlides(),
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

