package models

import (
	"fmt"
	"time"
)

// LeadStatus is the admin review state of a submitted lead.
//
//	pending ──► approved
//	   │
//	   └──────► rejected
//
// approved and rejected are terminal; deletion is allowed from any state.
type LeadStatus string

const (
	LeadPending  LeadStatus = "pending"
	LeadApproved LeadStatus = "approved"
	LeadRejected LeadStatus = "rejected"
)

var leadTransitions = map[LeadStatus][]LeadStatus{
	LeadPending: {LeadApproved, LeadRejected},
}

// ParseLeadStatus converts a raw string to a LeadStatus.
func ParseLeadStatus(s string) (LeadStatus, error) {
	st := LeadStatus(s)
	switch st {
	case LeadPending, LeadApproved, LeadRejected:
		return st, nil
	}
	return "", fmt.Errorf("unknown lead status %q", s)
}

// IsTransitionAllowed reports whether a lead may move from → to.
func IsTransitionAllowed(from, to LeadStatus) bool {
	for _, s := range leadTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// LeadKind tags which public form a lead came from.
type LeadKind string

const (
	LeadKindBrand      LeadKind = "brand"
	LeadKindInfluencer LeadKind = "influencer"
)

// ParseLeadKind converts a raw string (singular or plural) to a LeadKind.
func ParseLeadKind(s string) (LeadKind, error) {
	switch s {
	case "brand", "brands":
		return LeadKindBrand, nil
	case "influencer", "influencers":
		return LeadKindInfluencer, nil
	}
	return "", fmt.Errorf("unknown lead kind %q", s)
}

// BrandSubmission is a product submitted by a brand for influencer review.
type BrandSubmission struct {
	ID                 string     `json:"id"`
	CompanyName        string     `json:"companyName"`
	ContactName        string     `json:"contactName"`
	Email              string     `json:"email"`
	Phone              string     `json:"phone"`
	Website            string     `json:"website,omitempty"`
	ProductName        string     `json:"productName"`
	ProductCategory    string     `json:"productCategory"`
	ProductPrice       string     `json:"productPrice"`
	ProductURL         string     `json:"productUrl"`
	ProductDescription string     `json:"productDescription"`
	ReviewType         string     `json:"reviewType"`
	Budget             string     `json:"budget"`
	AdditionalInfo     string     `json:"additionalInfo,omitempty"`
	Status             LeadStatus `json:"status"`
	CreatedAt          time.Time  `json:"createdAt"`
}

// RecordID implements repository.Record.
func (b BrandSubmission) RecordID() string { return b.ID }

// InfluencerApplication is a creator applying to join the influencer network.
type InfluencerApplication struct {
	ID        string     `json:"id"`
	FullName  string     `json:"fullName"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Instagram string     `json:"instagram,omitempty"`
	YouTube   string     `json:"youtube,omitempty"`
	Twitter   string     `json:"twitter,omitempty"`
	Niche     string     `json:"niche"`
	Followers string     `json:"followers"`
	About     string     `json:"about,omitempty"`
	Status    LeadStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}

// RecordID implements repository.Record.
func (a InfluencerApplication) RecordID() string { return a.ID }

// LeadEntry is one row of the unified admin inbox. Exactly one of Brand or
// Influencer is set, as indicated by Kind.
type LeadEntry struct {
	Kind       LeadKind               `json:"kind"`
	Brand      *BrandSubmission       `json:"brand,omitempty"`
	Influencer *InfluencerApplication `json:"influencer,omitempty"`
}

// CreatedAt returns the submission time of the wrapped record.
func (e LeadEntry) CreatedAt() time.Time {
	switch e.Kind {
	case LeadKindBrand:
		return e.Brand.CreatedAt
	case LeadKindInfluencer:
		return e.Influencer.CreatedAt
	}
	return time.Time{}
}

// Status returns the review state of the wrapped record.
func (e LeadEntry) Status() LeadStatus {
	switch e.Kind {
	case LeadKindBrand:
		return e.Brand.Status
	case LeadKindInfluencer:
		return e.Influencer.Status
	}
	return ""
}
