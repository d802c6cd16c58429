package domain

import "github.com/supabase-community/supabase-go"

type SupabaseClient interface {
	Initialize() error
	DB() *supabase.Client
	BaseURL() string
	APIKey() string
}
