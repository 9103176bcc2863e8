// Package config provides centralized configuration management.
// This is the SINGLE SOURCE OF TRUTH for database, engine, and history
// settings — the battle-engine analogue of the teacher repo's
// internal/config, which plays the same role for video/audio/server
// settings.
//
// IMPORTANT: When changing values, only modify this file.
package config

import (
	"os"
	"strconv"
)

// =============================================================================
// DATABASE CONFIGURATION
// =============================================================================

// DatabaseConfig controls how the game database (internal/petdb) is loaded.
type DatabaseConfig struct {
	Filename        string // path to a JSON override file merged over the embedded table
	UpdateOnStartup bool   // read from SAP_DB_UPDATE_ON_STARTUP; nothing acts on it, no upstream refresh is performed
	PetsVersion     int    // 0 = unpinned
	FoodsVersion    int
	TokensVersion   int
	NamesVersion    int
}

// DefaultDatabase returns the default database configuration.
func DefaultDatabase() DatabaseConfig {
	return DatabaseConfig{
		Filename:        "",
		UpdateOnStartup: false,
	}
}

// DatabaseFromEnv returns database configuration with environment overrides.
func DatabaseFromEnv() DatabaseConfig {
	cfg := DefaultDatabase()

	if f := os.Getenv("SAP_DB_FILENAME"); f != "" {
		cfg.Filename = f
	}
	cfg.UpdateOnStartup = getEnvBool("SAP_DB_UPDATE_ON_STARTUP", cfg.UpdateOnStartup)
	cfg.PetsVersion = getEnvInt("SAP_DB_PETS_VERSION", 0)
	cfg.FoodsVersion = getEnvInt("SAP_DB_FOODS_VERSION", 0)
	cfg.TokensVersion = getEnvInt("SAP_DB_TOKENS_VERSION", 0)
	cfg.NamesVersion = getEnvInt("SAP_DB_NAMES_VERSION", 0)

	return cfg
}

// =============================================================================
// GENERAL / HISTORY CONFIGURATION
// =============================================================================

// GeneralConfig controls optional, purely-additive engine features.
type GeneralConfig struct {
	// BuildGraph enables the causal trigger graph (sap.History recorder).
	// Disabled it is a no-op; enabled it never alters engine behavior, only
	// records it.
	BuildGraph bool
}

// DefaultGeneral returns the default general configuration.
func DefaultGeneral() GeneralConfig {
	return GeneralConfig{BuildGraph: true}
}

// GeneralFromEnv returns general configuration with environment overrides.
func GeneralFromEnv() GeneralConfig {
	cfg := DefaultGeneral()
	if os.Getenv("SAP_BUILD_GRAPH") == "false" {
		cfg.BuildGraph = false
	}
	return cfg
}

// =============================================================================
// ENGINE CONFIGURATION
// =============================================================================

// EngineConfig controls effect-resolution guardrails.
type EngineConfig struct {
	// RuntimeBudget bounds trigger firings per combat phase / shop
	// operation. Exceeding it returns a saperr.RuntimeBudget error.
	RuntimeBudget int
}

// DefaultEngine returns the default engine configuration.
func DefaultEngine() EngineConfig {
	return EngineConfig{RuntimeBudget: 10_000}
}

// EngineFromEnv returns engine configuration with environment overrides.
func EngineFromEnv() EngineConfig {
	cfg := DefaultEngine()
	if b := getEnvInt("SAP_RUNTIME_BUDGET", 0); b > 0 {
		cfg.RuntimeBudget = b
	}
	return cfg
}

// =============================================================================
// COMPLETE APP CONFIGURATION
// =============================================================================

// AppConfig holds the complete application configuration.
type AppConfig struct {
	Database DatabaseConfig
	General  GeneralConfig
	Engine   EngineConfig
}

// Load returns the complete configuration with environment overrides.
func Load() AppConfig {
	return AppConfig{
		Database: DatabaseFromEnv(),
		General:  GeneralFromEnv(),
		Engine:   EngineFromEnv(),
	}
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}
