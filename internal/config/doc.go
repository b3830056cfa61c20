// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides loading, merging, and validation of the runtime
// settings of the cftunnel CLI.
//
// Settings are assembled from multiple sources. Earlier sources win for every
// field they set; later sources only fill fields that are still zero:
//  1. Command-line persistent flags
//  2. Environment variables (CFTUNNEL_*)
//  3. Settings file (yaml, json or toml; path from --config or CFTUNNEL_CONFIG)
//
// Defaults are applied after merging, then the result is validated.
//
// Runtime settings are not the operator configuration written by
// `cftunnel setup`; that record (API token, account, zone) is owned by the
// store package.
package config
