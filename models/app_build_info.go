// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo is the release metadata linked into the cftunnel binary and
// printed by `cftunnel version` and `--version`.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo wraps the values injected with -ldflags -X.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }

func (a AppBuildInfo) BuildDate() string { return a.date }

func (a AppBuildInfo) BuildCommit() string { return a.commit }
