package tenant

import (
	"time"

	"golang.org/x/oauth2"

	"github.com/rockerto/rigbot-go/config"
)

// StoredToken is the Firestore shape of a tenant's Google OAuth credentials.
type StoredToken struct {
	AccessToken  string    `firestore:"accessToken"`
	RefreshToken string    `firestore:"refreshToken"`
	TokenType    string    `firestore:"tokenType"`
	Expiry       time.Time `firestore:"expiry"`
}

// OAuth2 converts the stored shape back into a usable token.
func (t *StoredToken) OAuth2() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		TokenType:    t.TokenType,
		Expiry:       t.Expiry,
	}
}

// FromOAuth2 converts a live token into its Firestore shape.
func FromOAuth2(tok *oauth2.Token) *StoredToken {
	return &StoredToken{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
		Expiry:       tok.Expiry,
	}
}

// Profile is the business information the LLM responder grounds its answers
// in: free-text hours, pricing and contact blurbs written by the owner.
type Profile struct {
	BusinessName string `firestore:"businessName"`
	HoursText    string `firestore:"hoursText"`
	Pricing      string `firestore:"pricing"`
	Contact      string `firestore:"contact"`
}

// Tenant is one widget customer. Clave is the shared secret the embedded
// widget authenticates with.
type Tenant struct {
	ID         string           `firestore:"-"`
	Clave      string           `firestore:"clave"`
	CalendarID string           `firestore:"calendarId"`
	OwnerEmail string           `firestore:"ownerEmail"`
	Settings   config.Overrides `firestore:"settings"`
	Profile    Profile          `firestore:"profile"`
	Token      *StoredToken     `firestore:"googleToken"`
}

// InteractionLog is one request/reply pair persisted for the owner.
type InteractionLog struct {
	TenantID  string    `firestore:"tenantId"`
	VisitorID string    `firestore:"visitorId"`
	Message   string    `firestore:"message"`
	Reply     string    `firestore:"reply"`
	Path      string    `firestore:"path"` // "calendar" or "llm"
	CreatedAt time.Time `firestore:"createdAt"`
}
