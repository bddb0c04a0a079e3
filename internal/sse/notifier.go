package sse

import (
	"time"

	"github.com/dealspro/dealspro_api/internal/models"
)

// Notifier is the interface services use to emit admin events.
type Notifier interface {
	NotifyDealCreated(d *models.Deal)
	NotifyDealUpdated(d *models.Deal)
	NotifyDealDeleted(id string)
	NotifyLeadSubmitted(kind models.LeadKind, id string)
	NotifyLeadStatusChanged(kind models.LeadKind, id string, status models.LeadStatus)
	NotifyPendingDigest(counts map[models.LeadKind]int)
}

// HubNotifier implements Notifier using the SSE Hub.
type HubNotifier struct {
	hub *Hub
	now func() time.Time
}

// NewHubNotifier creates a notifier backed by the given Hub.
func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub, now: time.Now}
}

func (n *HubNotifier) send(e *Event) {
	if n.hub.ClientCount() == 0 {
		return
	}
	e.Timestamp = n.now()
	n.hub.Broadcast(e)
}

func (n *HubNotifier) NotifyDealCreated(d *models.Deal) {
	n.send(dealToEvent(EventDealCreated, d))
}

func (n *HubNotifier) NotifyDealUpdated(d *models.Deal) {
	n.send(dealToEvent(EventDealUpdated, d))
}

func (n *HubNotifier) NotifyDealDeleted(id string) {
	n.send(&Event{Event: EventDealDeleted, Kind: "deal", ID: id})
}

func (n *HubNotifier) NotifyLeadSubmitted(kind models.LeadKind, id string) {
	n.send(&Event{Event: EventLeadSubmitted, Kind: string(kind), ID: id, Status: string(models.LeadPending)})
}

func (n *HubNotifier) NotifyLeadStatusChanged(kind models.LeadKind, id string, status models.LeadStatus) {
	n.send(&Event{Event: EventLeadStatusChanged, Kind: string(kind), ID: id, Status: string(status)})
}

func (n *HubNotifier) NotifyPendingDigest(counts map[models.LeadKind]int) {
	out := make(map[string]int, len(counts))
	for k, v := range counts {
		out[string(k)] = v
	}
	n.send(&Event{Event: EventLeadPendingDigest, Status: string(models.LeadPending), Counts: out})
}

func dealToEvent(eventType EventType, d *models.Deal) *Event {
	return &Event{
		Event:  eventType,
		Kind:   "deal",
		ID:     d.ID,
		Slug:   d.Slug,
		Title:  d.Title,
		Status: activeLabel(d.IsActive),
	}
}

func activeLabel(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}

// NopNotifier is a no-op implementation for when SSE is not needed.
type NopNotifier struct{}

func (NopNotifier) NotifyDealCreated(*models.Deal)                                     {}
func (NopNotifier) NotifyDealUpdated(*models.Deal)                                     {}
func (NopNotifier) NotifyDealDeleted(string)                                           {}
func (NopNotifier) NotifyLeadSubmitted(models.LeadKind, string)                        {}
func (NopNotifier) NotifyLeadStatusChanged(models.LeadKind, string, models.LeadStatus) {}
func (NopNotifier) NotifyPendingDigest(map[models.LeadKind]int)                        {}
