// Package config reads the user configuration that supplies defaults for
// seedrepo's inputs.
package config
