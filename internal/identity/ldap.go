package identity

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/jrmeyers92/client-portals/internal/config"
	apperrors "github.com/jrmeyers92/client-portals/internal/errors"
	"github.com/jrmeyers92/client-portals/internal/logger"

	"github.com/go-ldap/ldap/v3"
)

// Attributes written on the principal's directory entry
const (
	AttrRole               = "portalRole"
	AttrOnboardingComplete = "portalOnboardingComplete"
	AttrOrganizationID     = "portalOrganizationId"
)

// ldapClient is the subset of *ldap.Conn used by LDAPDirectory
type ldapClient interface {
	Bind(username, password string) error
	Search(searchRequest *ldap.SearchRequest) (*ldap.SearchResult, error)
	Modify(modifyRequest *ldap.ModifyRequest) error
	Close() error
	SetTimeout(time.Duration)
}

var dialLDAP = func(network, addr string, cfg *tls.Config) (ldapClient, error) {
	return ldap.DialTLS(network, addr, cfg)
}

// LDAPDirectory stores principal metadata as attributes on the user's directory entry
type LDAPDirectory struct {
	cfg *config.Config
}

// NewLDAPDirectory creates a new LDAP backed directory
func NewLDAPDirectory(cfg *config.Config) *LDAPDirectory {
	return &LDAPDirectory{cfg: cfg}
}

// SetMetadata looks up the principal's entry and replaces the portal attributes
func (d *LDAPDirectory) SetMetadata(ctx context.Context, principalID string, metadata Metadata) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := d.cfg.LDAPHost + ":" + d.cfg.LDAPPort
	l, err := dialLDAP("tcp", addr, &tls.Config{InsecureSkipVerify: d.cfg.LDAPInsecureSkipVerify})
	if err != nil {
		return fmt.Errorf("dial ldap: %w", err)
	}
	defer l.Close()

	if d.cfg.LDAPTimeoutSec > 0 {
		l.SetTimeout(time.Duration(d.cfg.LDAPTimeoutSec) * time.Second)
	}

	if err := l.Bind(d.cfg.LDAPBindDN, d.cfg.LDAPBindPW); err != nil {
		return fmt.Errorf("bind ldap: %w", err)
	}

	res, err := l.Search(d.userSearchRequest(principalID))
	if err != nil {
		return fmt.Errorf("search ldap: %w", err)
	}
	if len(res.Entries) != 1 {
		return fmt.Errorf("%w: %d entries match principal %s", apperrors.ErrDirectoryRejected, len(res.Entries), principalID)
	}

	if err := l.Modify(buildModifyRequest(res.Entries[0].DN, metadata)); err != nil {
		return fmt.Errorf("modify ldap entry: %w", err)
	}

	logger.WithContext(ctx).WithField("dn", res.Entries[0].DN).Debug("ldap metadata updated")
	return nil
}

func (d *LDAPDirectory) userSearchRequest(principalID string) *ldap.SearchRequest {
	attr := d.cfg.LDAPUserAttribute
	if attr == "" {
		attr = "uid"
	}
	return ldap.NewSearchRequest(
		d.cfg.LDAPBaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		2,
		d.cfg.LDAPTimeoutSec,
		false,
		"("+attr+"="+ldap.EscapeFilter(principalID)+")",
		[]string{"dn"},
		nil,
	)
}

func buildModifyRequest(dn string, metadata Metadata) *ldap.ModifyRequest {
	req := ldap.NewModifyRequest(dn, nil)
	req.Replace(AttrRole, []string{string(metadata.Role)})
	req.Replace(AttrOnboardingComplete, []string{ldapBool(metadata.OnboardingComplete)})
	if metadata.OrganizationID != nil {
		req.Replace(AttrOrganizationID, []string{*metadata.OrganizationID})
	}
	return req
}

// ldapBool renders booleans the way LDAP's Boolean syntax expects
func ldapBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
