// Package models lists the generation models the configured provider
// exposes for the current API key, so users can pick one with --model.
package models
