package entity

import "time"

// Publisher authors games. Publishers referenced by a game are never deleted.
type Publisher struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	IsCompany bool   `json:"is_company"`
}

// Game is the publisher's authoritative catalog entry.
type Game struct {
	ID          int64      `json:"id"`
	PublisherID int64      `json:"publisher_id"`
	Name        string     `json:"name"`
	Version     string     `json:"version"` // M.m.p, only changed by patch publication
	ReleaseDate time.Time  `json:"release_date"`
	Platforms   []Platform `json:"platforms"`
	Genres      []Genre    `json:"genres"`
}

// Patch is an immutable record of a published version.
type Patch struct {
	ID              int64     `json:"id"`
	GameID          int64     `json:"game_id"`
	Version         string    `json:"version"`
	Tags            []LogTag  `json:"tags"`
	Description     string    `json:"description"`
	PublicationDate time.Time `json:"publication_date"`
}

// ReviewMirror is the publisher's copy of a distributor review.
// Its ID is the distributor review id, which makes mirroring idempotent.
type ReviewMirror struct {
	ID              int64     `json:"id"`
	GameID          int64     `json:"game_id"`
	Rating          int       `json:"rating"`
	Comment         string    `json:"comment"`
	PublicationDate time.Time `json:"publication_date"`
}

// CrashReport is an append-only crash record.
type CrashReport struct {
	ID            int64     `json:"id"`
	GameID        int64     `json:"game_id"`
	DistributorID int64     `json:"distributor_id"`
	Platform      Platform  `json:"platform"`
	Version       string    `json:"version"`
	ErrorCode     int       `json:"error_code"`
	Message       string    `json:"message"`
	ReportDate    time.Time `json:"report_date"`
}
