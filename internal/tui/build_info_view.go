// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/shiosayi/models"
)

func renderBuildInfoWindow(s styles, info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(s.title.Render("shiosayi"))
	b.WriteString("\n\n")
	b.WriteString(s.label.Render("Version"))
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString(s.label.Render("Date"))
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString(s.label.Render("Commit"))
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\n\n")
	b.WriteString(s.help.Render("esc: back"))

	return s.box.Render(b.String())
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
