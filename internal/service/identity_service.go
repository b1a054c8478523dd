package service

import (
	"github.com/rs/zerolog/log"
	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
	"github.com/walnut-pro/sb1-d8pb5s/config"
)

// IdentityProvider mirrors sign-up/sign-in calls against the external
// authentication system. Registration and login are rejected whenever the
// provider reports an error, even if local credentials are valid.
type IdentityProvider interface {
	SignUp(email, password string) error
	SignIn(email, password string) error
}

type supabaseIdentityProvider struct {
	client gotrue.Client
}

// NewIdentityProvider returns the Supabase GoTrue client, or a no-op provider
// when SUPABASE_URL is not configured.
func NewIdentityProvider(cfg *config.Config) IdentityProvider {
	if cfg.Supabase.URL == "" {
		log.Warn().Msg("SUPABASE_URL not set, external identity provider disabled")
		return disabledIdentityProvider{}
	}
	client := gotrue.New(cfg.Supabase.ProjectRef, cfg.Supabase.Key).
		WithCustomGoTrueURL(cfg.Supabase.URL)
	return &supabaseIdentityProvider{client: client}
}

func (p *supabaseIdentityProvider) SignUp(email, password string) error {
	_, err := p.client.Signup(types.SignupRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		log.Warn().Err(err).Str("email", email).Msg("Identity provider sign-up failed")
	}
	return err
}

func (p *supabaseIdentityProvider) SignIn(email, password string) error {
	_, err := p.client.SignInWithEmailPassword(email, password)
	if err != nil {
		log.Warn().Err(err).Str("email", email).Msg("Identity provider sign-in failed")
	}
	return err
}

type disabledIdentityProvider struct{}

func (disabledIdentityProvider) SignUp(string, string) error { return nil }
func (disabledIdentityProvider) SignIn(string, string) error { return nil }
