// Package config provides configuration structures and utilities for verifymodels.
// It defines where the catalog and mapping table live, how registries are
// contacted, and which optional outputs a run produces.
package config
