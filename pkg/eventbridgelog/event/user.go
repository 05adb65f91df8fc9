package event

// UserRegisteredEvent is emitted when a new account is created.
// Required: user_id, email, username, registration_method, terms_accepted.
type UserRegisteredEvent struct {
	BaseEvent
	Email              string `json:"email"`
	Username           string `json:"username"`
	FirstName          string `json:"first_name,omitempty"`
	LastName           string `json:"last_name,omitempty"`
	RegistrationMethod string `json:"registration_method"`
	TermsAccepted      bool   `json:"terms_accepted"`
	MarketingConsent   bool   `json:"marketing_consent"`
	ReferralCode       string `json:"referral_code,omitempty"`
}

// NewUserRegisteredEvent validates fields and builds a UserRegisteredEvent.
func NewUserRegisteredEvent(fields Fields) (*UserRegisteredEvent, error) {
	r := newReader(fields)
	e := &UserRegisteredEvent{
		BaseEvent:          r.base(UserRegistered, true),
		Email:              r.requiredEmail("email"),
		Username:           r.requiredString("username"),
		FirstName:          r.optionalString("first_name"),
		LastName:           r.optionalString("last_name"),
		RegistrationMethod: r.requiredString("registration_method"),
		TermsAccepted:      r.requiredBool("terms_accepted"),
		MarketingConsent:   r.boolDefault("marketing_consent", false),
		ReferralCode:       r.optionalString("referral_code"),
	}
	if err := r.err("UserRegisteredEvent"); err != nil {
		return nil, err
	}
	return e, nil
}

// UserLoginEvent is emitted for every login attempt, successful or not.
// Required: user_id, session_id, login_method.
type UserLoginEvent struct {
	BaseEvent
	SessionID       string `json:"session_id"`
	LoginMethod     string `json:"login_method"`
	LoginSuccessful bool   `json:"login_successful"`
	IPAddress       string `json:"ip_address,omitempty"`
	UserAgent       string `json:"user_agent,omitempty"`
	FailureReason   string `json:"failure_reason,omitempty"`
	MFAUsed         bool   `json:"mfa_used"`
}

// NewUserLoginEvent validates fields and builds a UserLoginEvent.
func NewUserLoginEvent(fields Fields) (*UserLoginEvent, error) {
	r := newReader(fields)
	e := &UserLoginEvent{
		BaseEvent:       r.base(UserLogin, true),
		SessionID:       r.requiredString("session_id"),
		LoginMethod:     r.requiredString("login_method"),
		LoginSuccessful: r.boolDefault("login_successful", true),
		IPAddress:       r.optionalString("ip_address"),
		UserAgent:       r.optionalString("user_agent"),
		FailureReason:   r.optionalString("failure_reason"),
		MFAUsed:         r.boolDefault("mfa_used", false),
	}
	if err := r.err("UserLoginEvent"); err != nil {
		return nil, err
	}
	return e, nil
}

// UserLogoutEvent is emitted when a session ends.
// Required: user_id, session_id.
type UserLogoutEvent struct {
	BaseEvent
	SessionID       string `json:"session_id"`
	LogoutReason    string `json:"logout_reason"`
	SessionDuration *int   `json:"session_duration,omitempty"`
}

// NewUserLogoutEvent validates fields and builds a UserLogoutEvent.
func NewUserLogoutEvent(fields Fields) (*UserLogoutEvent, error) {
	r := newReader(fields)
	e := &UserLogoutEvent{
		BaseEvent:       r.base(UserLogout, true),
		SessionID:       r.requiredString("session_id"),
		LogoutReason:    r.stringDefault("logout_reason", "user_initiated"),
		SessionDuration: r.optionalInt("session_duration"),
	}
	r.minIntPtr("session_duration", e.SessionDuration, 0)
	if err := r.err("UserLogoutEvent"); err != nil {
		return nil, err
	}
	return e, nil
}

// UserProfileUpdatedEvent is emitted when profile fields change.
// Required: user_id, updated_fields.
type UserProfileUpdatedEvent struct {
	BaseEvent
	UpdatedFields  []string       `json:"updated_fields"`
	PreviousValues map[string]any `json:"previous_values,omitempty"`
	NewValues      map[string]any `json:"new_values,omitempty"`
	UpdateSource   string         `json:"update_source"`
}

// NewUserProfileUpdatedEvent validates fields and builds a UserProfileUpdatedEvent.
func NewUserProfileUpdatedEvent(fields Fields) (*UserProfileUpdatedEvent, error) {
	r := newReader(fields)
	e := &UserProfileUpdatedEvent{
		BaseEvent:      r.base(UserProfileUpdated, true),
		UpdatedFields:  r.stringList("updated_fields", true, true),
		PreviousValues: r.object("previous_values", false),
		NewValues:      r.object("new_values", false),
		UpdateSource:   r.stringDefault("update_source", "user"),
	}
	if err := r.err("UserProfileUpdatedEvent"); err != nil {
		return nil, err
	}
	return e, nil
}

// UserDeletedEvent is emitted when an account is removed.
// Required: user_id, deletion_reason, deleted_by.
type UserDeletedEvent struct {
	BaseEvent
	DeletionReason    string `json:"deletion_reason"`
	DeletedBy         string `json:"deleted_by"`
	DataRetentionDays int    `json:"data_retention_days"`
	HardDelete        bool   `json:"hard_delete"`
}

// NewUserDeletedEvent validates fields and builds a UserDeletedEvent.
func NewUserDeletedEvent(fields Fields) (*UserDeletedEvent, error) {
	r := newReader(fields)
	e := &UserDeletedEvent{
		BaseEvent:         r.base(UserDeleted, true),
		DeletionReason:    r.requiredString("deletion_reason"),
		DeletedBy:         r.requiredString("deleted_by"),
		DataRetentionDays: r.intDefault("data_retention_days", 30),
		HardDelete:        r.boolDefault("hard_delete", false),
	}
	r.minInt("data_retention_days", e.DataRetentionDays, 0)
	if err := r.err("UserDeletedEvent"); err != nil {
		return nil, err
	}
	return e, nil
}
