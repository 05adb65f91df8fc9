package event

import (
	"time"
)

// ReviewSubmittedEvent is emitted when a user submits a product review.
type ReviewSubmittedEvent struct {
	BaseEvent
	ReviewID         string `json:"review_id"`
	ProductID        string `json:"product_id"`
	ProductName      string `json:"product_name"`
	Rating           int    `json:"rating"`
	Title            string `json:"title,omitempty"`
	Content          string `json:"content"`
	ReviewerName     string `json:"reviewer_name"`
	VerifiedPurchase bool   `json:"verified_purchase"`
	ReviewSource     string `json:"review_source"`
	HelpfulVotes     int    `json:"helpful_votes"`
	IsApproved       bool   `json:"is_approved"`
	ModerationNotes  string `json:"moderation_notes,omitempty"`
}

// NewReviewSubmittedEvent validates fields and builds a ReviewSubmittedEvent.
// Rating must be between 1 and 5.
func NewReviewSubmittedEvent(fields Fields) (*ReviewSubmittedEvent, error) {
	r := newReader(fields)
	e := &ReviewSubmittedEvent{
		BaseEvent:        r.base(ReviewSubmitted, false),
		ReviewID:         r.requiredString("review_id"),
		ProductID:        r.requiredString("product_id"),
		ProductName:      r.requiredString("product_name"),
		Rating:           r.requiredInt("rating"),
		Title:            r.optionalString("title"),
		Content:          r.requiredString("content"),
		ReviewerName:     r.requiredString("reviewer_name"),
		VerifiedPurchase: r.boolDefault("verified_purchase", false),
		ReviewSource:     r.requiredString("review_source"),
		HelpfulVotes:     r.intDefault("helpful_votes", 0),
		IsApproved:       r.boolDefault("is_approved", true),
		ModerationNotes:  r.optionalString("moderation_notes"),
	}
	r.intBetween("rating", e.Rating, 1, 5)
	r.minInt("helpful_votes", e.HelpfulVotes, 0)
	if err := r.err("ReviewSubmittedEvent"); err != nil {
		return nil, err
	}
	return e, nil
}

// UserSessionEvent is emitted for session tracking.
type UserSessionEvent struct {
	BaseEvent
	SessionID        string     `json:"session_id"`
	SessionStart     time.Time  `json:"session_start"`
	SessionEnd       *time.Time `json:"session_end,omitempty"`
	SessionDuration  *int       `json:"session_duration,omitempty"`
	UserAgent        string     `json:"user_agent"`
	IPAddress        string     `json:"ip_address"`
	DeviceType       string     `json:"device_type"`
	Browser          string     `json:"browser"`
	OperatingSystem  string     `json:"operating_system"`
	Country          string     `json:"country,omitempty"`
	Region           string     `json:"region,omitempty"`
	City             string     `json:"city,omitempty"`
	PageViews        int        `json:"page_views"`
	ActionsPerformed int        `json:"actions_performed"`
	ConversionEvents []string   `json:"conversion_events"`
	TimeOnSite       *int       `json:"time_on_site,omitempty"`
	BounceRate       *float64   `json:"bounce_rate,omitempty"`
}

// NewUserSessionEvent validates fields and builds a UserSessionEvent.
// A session may not end before it starts.
func NewUserSessionEvent(fields Fields) (*UserSessionEvent, error) {
	r := newReader(fields)
	e := &UserSessionEvent{
		BaseEvent:        r.base(UserSession, false),
		SessionID:        r.requiredString("session_id"),
		SessionStart:     r.requiredTime("session_start"),
		SessionEnd:       r.optionalTime("session_end"),
		SessionDuration:  r.optionalInt("session_duration"),
		UserAgent:        r.requiredString("user_agent"),
		IPAddress:        r.requiredString("ip_address"),
		DeviceType:       r.requiredString("device_type"),
		Browser:          r.requiredString("browser"),
		OperatingSystem:  r.requiredString("operating_system"),
		Country:          r.optionalString("country"),
		Region:           r.optionalString("region"),
		City:             r.optionalString("city"),
		PageViews:        r.intDefault("page_views", 0),
		ActionsPerformed: r.intDefault("actions_performed", 0),
		ConversionEvents: r.stringList("conversion_events", false, true),
		TimeOnSite:       r.optionalInt("time_on_site"),
		BounceRate:       r.optionalFloat("bounce_rate"),
	}
	r.minIntPtr("session_duration", e.SessionDuration, 0)
	r.minInt("page_views", e.PageViews, 0)
	r.minInt("actions_performed", e.ActionsPerformed, 0)
	r.minIntPtr("time_on_site", e.TimeOnSite, 0)
	r.floatBetween("bounce_rate", e.BounceRate, 0, 1)
	if e.SessionEnd != nil && !e.SessionStart.IsZero() && e.SessionEnd.Before(e.SessionStart) {
		r.fail("session_end", "must not be before session_start", e.SessionEnd.Format(time.RFC3339Nano))
	}
	if err := r.err("UserSessionEvent"); err != nil {
		return nil, err
	}
	return e, nil
}

// Duration returns the session length: session_duration when set, else
// the span between session_start and session_end, else zero.
func (e *UserSessionEvent) Duration() time.Duration {
	if e.SessionDuration != nil {
		return time.Duration(*e.SessionDuration) * time.Second
	}
	if e.SessionEnd != nil {
		return e.SessionEnd.Sub(e.SessionStart)
	}
	return 0
}

// PageViewEvent is emitted when a user views a page.
type PageViewEvent struct {
	BaseEvent
	PageURL        string   `json:"page_url"`
	PageTitle      string   `json:"page_title"`
	PageCategory   string   `json:"page_category"`
	ReferrerURL    string   `json:"referrer_url,omitempty"`
	ReferrerDomain string   `json:"referrer_domain,omitempty"`
	SearchQuery    string   `json:"search_query,omitempty"`
	TimeOnPage     *int     `json:"time_on_page,omitempty"`
	ScrollDepth    *float64 `json:"scroll_depth,omitempty"`
	PageLoadTime   *int     `json:"page_load_time,omitempty"`
	PageSize       *int     `json:"page_size,omitempty"`
	ContentType    string   `json:"content_type"`
	ContentID      string   `json:"content_id,omitempty"`
	SessionID      string   `json:"session_id"`
	PageSequence   int      `json:"page_sequence"`
	IsBounce       bool     `json:"is_bounce"`
	ExitPage       bool     `json:"exit_page"`
}

// NewPageViewEvent validates fields and builds a PageViewEvent.
// Scroll depth is a percentage between 0 and 100.
func NewPageViewEvent(fields Fields) (*PageViewEvent, error) {
	r := newReader(fields)
	e := &PageViewEvent{
		BaseEvent:      r.base(PageView, false),
		PageURL:        r.requiredString("page_url"),
		PageTitle:      r.requiredString("page_title"),
		PageCategory:   r.requiredString("page_category"),
		ReferrerURL:    r.optionalString("referrer_url"),
		ReferrerDomain: r.optionalString("referrer_domain"),
		SearchQuery:    r.optionalString("search_query"),
		TimeOnPage:     r.optionalInt("time_on_page"),
		ScrollDepth:    r.optionalFloat("scroll_depth"),
		PageLoadTime:   r.optionalInt("page_load_time"),
		PageSize:       r.optionalInt("page_size"),
		ContentType:    r.requiredString("content_type"),
		ContentID:      r.optionalString("content_id"),
		SessionID:      r.requiredString("session_id"),
		PageSequence:   r.requiredInt("page_sequence"),
		IsBounce:       r.boolDefault("is_bounce", false),
		ExitPage:       r.boolDefault("exit_page", false),
	}
	r.minIntPtr("time_on_page", e.TimeOnPage, 0)
	r.floatBetween("scroll_depth", e.ScrollDepth, 0, 100)
	r.minIntPtr("page_load_time", e.PageLoadTime, 0)
	r.minIntPtr("page_size", e.PageSize, 0)
	r.minInt("page_sequence", e.PageSequence, 1)
	if err := r.err("PageViewEvent"); err != nil {
		return nil, err
	}
	return e, nil
}
