// Package config manages persistent user settings stored under the home
// dot-directory (~/.proper/config.yaml), with environment variable
// overrides via the PROPER_ prefix.
package config
