package reservation

import "errors"

var (
	ErrInvalidPlatform = errors.New("invalid platform")
	ErrInvalidStatus   = errors.New("invalid reservation status")
)

type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformLine      Platform = "line"
)

func NewPlatform(value string) (Platform, error) {
	p := Platform(value)
	if !p.IsValid() {
		return "", ErrInvalidPlatform
	}
	return p, nil
}

func (p Platform) String() string {
	return string(p)
}

func (p Platform) IsValid() bool {
	switch p {
	case PlatformFacebook, PlatformInstagram, PlatformLine:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
)

// NewStatus parses a status value; the empty string maps to the default
// StatusPending.
func NewStatus(value string) (Status, error) {
	if value == "" {
		return StatusPending, nil
	}
	s := Status(value)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled:
		return true
	default:
		return false
	}
}
