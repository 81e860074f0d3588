// webhook.go
//
// Hooomz OS — back-office data service for the Hooomz construction management application
// Copyright (c) 2026 Hooomz
//
// This file is part of hooomz-os.
// hooomz-os is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// hooomz-os is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with hooomz-os.
// If not, see <https://www.gnu.org/licenses/>.

// Package notify delivers phase-transition events to an optional outbound
// webhook. Delivery is best-effort: failures are logged and never surfaced
// to the request that triggered them.
package notify

import (
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// PhaseEvent is the webhook payload for a project phase transition.
type PhaseEvent struct {
	ProjectID  string `json:"project_id"`
	Phase      string `json:"phase"`
	PhaseGroup string `json:"phase_group"`
	OccurredAt string `json:"occurred_at"`
}

// Webhook posts phase events to a configured URL. A nil *Webhook is a
// valid no-op notifier.
type Webhook struct {
	url    string
	client *resty.Client
}

// NewWebhook creates a notifier for url, or nil when url is empty.
func NewWebhook(url string) *Webhook {
	if url == "" {
		return nil
	}
	client := resty.New().
		SetTimeout(5 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)
	return &Webhook{url: url, client: client}
}

// PhaseChanged posts a phase transition event. Safe on a nil receiver.
func (w *Webhook) PhaseChanged(projectID, phase, phaseGroup string) {
	if w == nil {
		return
	}

	event := PhaseEvent{
		ProjectID:  projectID,
		Phase:      phase,
		PhaseGroup: phaseGroup,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}

	go func() {
		resp, err := w.client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(event).
			Post(w.url)
		if err != nil {
			log.Printf("notify: phase webhook delivery failed: %v", err)
			return
		}
		if resp.IsError() {
			log.Printf("notify: phase webhook returned %d", resp.StatusCode())
		}
	}()
}
