// Package config loads metrolink's own settings.
//
// Sources are layered with koanf, later ones winning:
//
//  1. the embedded defaults
//  2. metrolink.toml, .metrolink.toml or metrolink.yaml in the project root
//  3. the "metrolink" key of the project's package.json
//  4. METROLINK_* entries of the project's .env file
//  5. METROLINK_* environment variables
//
// Command line flags are applied on top by the CLI.
package config
