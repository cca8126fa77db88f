// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper.
//
// All filesystem roots the pipeline touches (cable definitions, generated
// docs, channel assets) come from here and are passed explicitly into the
// discovery and docgen layers, so tests can point everything at temporary
// directories.
package config
