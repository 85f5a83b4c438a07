package insights

import (
	"fmt"

	errors "github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
)

// Credential pairs a Storage Insights tenant id with the API key that
// authorizes token requests for it. Immutable once loaded.
type Credential struct {
	TenantID string
	APIKey   string
}

// MaskedKey returns a non-sensitive key suffix suitable for logs.
func (c Credential) MaskedKey() string {
	if c.APIKey == "" {
		return ""
	}

	return fmt.Sprintf("***%s", keySuffix(c.APIKey))
}

// keySuffix returns the trailing key hint used for diagnostics.
func keySuffix(key string) string {
	if len(key) <= 4 {
		return key
	}

	return key[len(key)-4:]
}

// Registry holds the static tenant to API key mapping: exactly one default
// entry plus zero or more additional entries. Lookups are case-sensitive
// exact matches.
type Registry struct {
	def        Credential
	additional map[string]string
	logger     logSDK.Logger
}

// NewRegistry builds a tenant registry from the default credential and the
// additional tenant mapping.
func NewRegistry(def Credential, additional map[string]string, logger logSDK.Logger) (*Registry, error) {
	if def.TenantID == "" {
		return nil, errors.New("default tenant id is required")
	}
	if def.APIKey == "" {
		return nil, errors.New("default api key is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	mapping := make(map[string]string, len(additional))
	for tenantID, apiKey := range additional {
		if tenantID == "" || apiKey == "" {
			return nil, errors.Errorf("additional tenant mapping contains an empty entry")
		}
		mapping[tenantID] = apiKey
	}

	return &Registry{
		def:        def,
		additional: mapping,
		logger:     logger.Named("tenants"),
	}, nil
}

// Resolve validates a caller-supplied tenant id and returns the credential
// for it. An empty id resolves to the default tenant. Unknown ids fail with
// UnsupportedTenantError.
func (r *Registry) Resolve(tenantID string) (Credential, error) {
	if tenantID == "" || tenantID == r.def.TenantID {
		r.logger.Debug("reconciled to default tenant",
			zap.String("tenant_id", r.def.TenantID))
		return r.def, nil
	}

	if apiKey, ok := r.additional[tenantID]; ok {
		r.logger.Debug("reconciled to alternate tenant",
			zap.String("tenant_id", tenantID))
		return Credential{TenantID: tenantID, APIKey: apiKey}, nil
	}

	r.logger.Error("unlisted tenant id", zap.String("tenant_id", tenantID))
	return Credential{}, &UnsupportedTenantError{TenantID: tenantID}
}

// DefaultTenantID returns the configured default tenant id.
func (r *Registry) DefaultTenantID() string {
	return r.def.TenantID
}
