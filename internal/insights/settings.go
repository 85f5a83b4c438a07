package insights

import (
	"encoding/json"
	"os"

	errors "github.com/Laisky/errors/v2"
	gconfig "github.com/Laisky/go-config/v2"
)

// additionalTenantsEnv carries a JSON object of tenant id to API key,
// overriding the mapping from the settings file when set.
const additionalTenantsEnv = "ADDITIONAL_TENANT_API_MAPPING"

// Settings is the upstream connection configuration consumed by the core.
type Settings struct {
	// BaseURL is the Storage Insights REST API root, without trailing slash.
	BaseURL string
	// DefaultTenantID and DefaultAPIKey form the registry's default entry.
	DefaultTenantID string
	DefaultAPIKey   string
	// AdditionalTenants maps extra tenant ids to their API keys.
	AdditionalTenants map[string]string
	// MetricGroupsFile points at the JSON file defining named metric groups;
	// optional, metric tools lose their defaults without it.
	MetricGroupsFile string
}

// SettingsFromConfig reads the insights settings from the shared config,
// applying the environment override for the additional tenant mapping.
func SettingsFromConfig() (Settings, error) {
	settings := Settings{
		BaseURL:           gconfig.Shared.GetString("settings.insights.base_url"),
		DefaultTenantID:   gconfig.Shared.GetString("settings.insights.tenant_id"),
		DefaultAPIKey:     gconfig.Shared.GetString("settings.insights.api_key"),
		AdditionalTenants: gconfig.Shared.GetStringMapString("settings.insights.additional_tenants"),
		MetricGroupsFile:  gconfig.Shared.GetString("settings.insights.metric_groups_file"),
	}

	if raw := os.Getenv(additionalTenantsEnv); raw != "" {
		mapping := map[string]string{}
		if err := json.Unmarshal([]byte(raw), &mapping); err != nil {
			return Settings{}, errors.Wrapf(err, "decode %s", additionalTenantsEnv)
		}
		settings.AdditionalTenants = mapping
	}

	if settings.BaseURL == "" {
		return Settings{}, errors.New("settings.insights.base_url is required")
	}
	if settings.DefaultTenantID == "" {
		return Settings{}, errors.New("settings.insights.tenant_id is required")
	}
	if settings.DefaultAPIKey == "" {
		return Settings{}, errors.New("settings.insights.api_key is required")
	}

	return settings, nil
}
