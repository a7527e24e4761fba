package polar

import "errors"

// Token store errors callers branch on
var (
	// ErrTokenNotFound indicates no token file exists yet; the OAuth flow has to run first.
	ErrTokenNotFound = errors.New("polar token not found")
	// ErrTokenCorrupted indicates the token file exists but cannot be decoded.
	ErrTokenCorrupted = errors.New("polar token file is corrupted")
)

// Default profile values used when the token file carries no registration data
const (
	DefaultProfileAge      = 35
	DefaultProfileWeightKg = 59.0
	DefaultProfileHeightCm = 162.0
	DefaultProfileGender   = "FEMALE"
)

// Token is an AccessLink OAuth2 token together with the registration
// profile captured during authorization.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresIn   int64  `json:"expires_in,omitempty"`
	XUserID     int64  `json:"x_user_id"`

	// Optional registration profile used for coaching context
	Age      *int     `json:"age,omitempty"`
	WeightKg *float64 `json:"weight,omitempty"`
	HeightCm *float64 `json:"height,omitempty"`
	Gender   *string  `json:"gender,omitempty"`
}

// Valid reports whether the token carries the fields required to call AccessLink
func (t *Token) Valid() bool {
	return t != nil && t.AccessToken != "" && t.XUserID != 0
}

// Profile describes the athlete the assistant advises
type Profile struct {
	Age      int
	WeightKg float64
	HeightCm float64
	Gender   string
}

// Profile returns the registration profile, falling back to defaults for
// fields the token file does not carry.
func (t *Token) Profile() Profile {
	p := Profile{
		Age:      DefaultProfileAge,
		WeightKg: DefaultProfileWeightKg,
		HeightCm: DefaultProfileHeightCm,
		Gender:   DefaultProfileGender,
	}
	if t == nil {
		return p
	}
	if t.Age != nil {
		p.Age = *t.Age
	}
	if t.WeightKg != nil {
		p.WeightKg = *t.WeightKg
	}
	if t.HeightCm != nil {
		p.HeightCm = *t.HeightCm
	}
	if t.Gender != nil {
		p.Gender = *t.Gender
	}
	return p
}
