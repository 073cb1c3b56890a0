package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/jrmeyers92/client-portals/internal/config"
	apperrors "github.com/jrmeyers92/client-portals/internal/errors"
	"github.com/jrmeyers92/client-portals/internal/logger"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2/clientcredentials"
)

// apiError is the error body returned by the identity provider's admin API
type apiError struct {
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

func (e apiError) String() string {
	if len(e.Errors) == 0 {
		return "no error body"
	}
	return fmt.Sprintf("%s: %s", e.Errors[0].Code, e.Errors[0].Message)
}

// HTTPDirectory updates user metadata through the identity provider's admin REST API
type HTTPDirectory struct {
	httpClient *resty.Client
}

// NewHTTPDirectory creates the client. When a token URL is configured the client
// authenticates with OAuth2 client credentials, otherwise with the static secret key.
func NewHTTPDirectory(cfg *config.Config) *HTTPDirectory {
	var client *resty.Client
	if cfg.IdentityTokenURL != "" {
		cc := clientcredentials.Config{
			ClientID:     cfg.IdentityClientID,
			ClientSecret: cfg.IdentityClientSecret,
			TokenURL:     cfg.IdentityTokenURL,
		}
		client = resty.NewWithClient(cc.Client(context.Background()))
	} else {
		client = resty.New().SetAuthToken(cfg.IdentitySecretKey)
	}

	timeout := time.Duration(cfg.IdentityTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client.
		SetBaseURL(cfg.IdentityBaseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(200*time.Millisecond).
		SetRetryMaxWaitTime(2*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &HTTPDirectory{httpClient: client}
}

// SetMetadata merges the metadata into the user's public metadata
func (d *HTTPDirectory) SetMetadata(ctx context.Context, principalID string, metadata Metadata) error {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"principal": principalID,
		"role":      metadata.Role,
	})

	var failure apiError
	resp, err := d.httpClient.R().
		SetContext(ctx).
		SetPathParam("userID", principalID).
		SetBody(map[string]interface{}{"public_metadata": metadata}).
		SetError(&failure).
		Patch("/v1/users/{userID}/metadata")
	if err != nil {
		log.WithError(err).Error("identity provider call failed")
		return fmt.Errorf("update metadata: %w", err)
	}

	if resp.IsError() {
		log.WithField("status_code", resp.StatusCode()).Error("identity provider rejected metadata update")
		return fmt.Errorf("%w: status %d: %s", apperrors.ErrDirectoryRejected, resp.StatusCode(), failure)
	}

	log.Debug("identity metadata updated")
	return nil
}
