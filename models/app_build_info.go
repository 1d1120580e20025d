// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AppBuildInfo carries build-time metadata injected by linker flags.
// It is reported by the server's /version endpoint and the admin CLI.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty values are reported as "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNA(version),
		Date:    orNA(date),
		Commit:  orNA(commit),
	}
}

func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", a.Version, a.Date, a.Commit)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
