// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-draft-keeper/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, serverVersion string) string {
	var b strings.Builder

	b.WriteString("Application: DraftKeeper\n")
	b.WriteString(info.String())
	if !info.Known() {
		b.WriteString("\n(development build)")
	}
	b.WriteString("\nServer version: ")
	if strings.TrimSpace(serverVersion) == "" {
		b.WriteString("N/A")
	} else {
		b.WriteString(serverVersion)
	}

	return overlayBoxStyle.Render(renderPage("ABOUT", b.String(), "esc: back"))
}
