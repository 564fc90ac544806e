// Package tenant is the Firestore-backed document store for widget
// customers: their clave, calendar credentials, config overrides and
// interaction logs.
package tenant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const (
	tenantsCollection = "tenants"
	logsCollection    = "interaction_logs"
)

// ErrNotFound is returned when no tenant matches the presented clave.
var ErrNotFound = errors.New("tenant not found")

type Store struct {
	fs *firestore.Client
}

// NewStore initializes the Firebase app and its Firestore client.
func NewStore(ctx context.Context, projectID, credentialsFile string) (*Store, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}

	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	log.Info().Str("project_id", projectID).Msg("Firestore connected")

	return &Store{fs: fs}, nil
}

func (s *Store) Close() error {
	return s.fs.Close()
}

// ByClave looks a tenant up by its widget clave.
func (s *Store) ByClave(ctx context.Context, clave string) (*Tenant, error) {
	iter := s.fs.Collection(tenantsCollection).
		Where("clave", "==", clave).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying tenant by clave: %w", err)
	}

	var t Tenant
	if err := doc.DataTo(&t); err != nil {
		return nil, fmt.Errorf("decoding tenant %s: %w", doc.Ref.ID, err)
	}
	t.ID = doc.Ref.ID
	return &t, nil
}

// SaveToken persists a refreshed OAuth token on the tenant document.
func (s *Store) SaveToken(ctx context.Context, tenantID string, tok *oauth2.Token) error {
	_, err := s.fs.Collection(tenantsCollection).Doc(tenantID).Update(ctx, []firestore.Update{
		{Path: "googleToken", Value: FromOAuth2(tok)},
	})
	if err != nil {
		return fmt.Errorf("saving token for tenant %s: %w", tenantID, err)
	}
	return nil
}

// ClearToken removes revoked or invalid credentials so later requests fall
// back to the default calendar instead of retrying a dead token.
func (s *Store) ClearToken(ctx context.Context, tenantID string) error {
	_, err := s.fs.Collection(tenantsCollection).Doc(tenantID).Update(ctx, []firestore.Update{
		{Path: "googleToken", Value: firestore.Delete},
	})
	if err != nil {
		return fmt.Errorf("clearing token for tenant %s: %w", tenantID, err)
	}
	return nil
}

// LogInteraction appends one request/reply pair to the tenant's log. Logging
// failures are reported but never fail the request.
func (s *Store) LogInteraction(ctx context.Context, entry InteractionLog) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, _, err := s.fs.Collection(logsCollection).Add(ctx, entry)
	if err != nil {
		return fmt.Errorf("logging interaction for tenant %s: %w", entry.TenantID, err)
	}
	return nil
}
