package supabase

import (
	"fmt"
	"strings"

	"pdf-translator/internal/domain"

	"github.com/supabase-community/supabase-go"
)

// Client implements domain.SupabaseClient.
type Client struct {
	client *supabase.Client
	url    string
	key    string
	logger domain.Logger
}

func NewClient(config domain.Config, logger domain.Logger) *Client {
	return &Client{
		url:    strings.TrimRight(config.GetSupabaseURL(), "/"),
		key:    config.GetSupabaseKey(),
		logger: logger,
	}
}

func (c *Client) DB() *supabase.Client {
	return c.client
}

func (c *Client) BaseURL() string {
	return c.url
}

func (c *Client) APIKey() string {
	return c.key
}

// Initialize establishes a connection to Supabase
func (c *Client) Initialize() error {
	if c.url == "" || c.key == "" {
		return fmt.Errorf("supabase URL and key must be provided")
	}

	client, err := supabase.NewClient(c.url, c.key, &supabase.ClientOptions{})
	if err != nil {
		return fmt.Errorf("failed to create Supabase client: %w", err)
	}

	c.client = client
	c.logger.Info("Supabase client initialized successfully", "url", c.url)
	return nil
}
