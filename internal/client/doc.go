// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the cftunnel command line application.
//
// It builds the cobra command tree, wires configuration, local stores, the
// Cloudflare adapter and the connector supervisor into the service layer,
// and renders results and prompts on the terminal. It is the only layer that
// prints or decides the process exit code.
package client
