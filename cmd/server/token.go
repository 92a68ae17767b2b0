// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/tomtom215/marquee/internal/auth"
	"github.com/tomtom215/marquee/internal/config"
)

// issueAdminToken writes a signed admin token for subject to w.
func issueAdminToken(w io.Writer, cfg *config.SecurityConfig, subject string) error {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return fmt.Errorf("subject must not be blank")
	}

	manager, err := auth.NewJWTManager(cfg)
	if err != nil {
		return err
	}
	token, err := manager.GenerateToken(subject, auth.RoleAdmin)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, token)
	return err
}
