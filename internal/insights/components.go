package insights

import (
	errors "github.com/Laisky/errors/v2"
)

// ComponentType is a storage-system component inventory endpoint. The set is
// closed; callers must supply an exact value from ComponentTypes.
type ComponentType string

const (
	ComponentVolumes         ComponentType = "volumes"
	ComponentPools           ComponentType = "pools"
	ComponentEnclosures      ComponentType = "enclosures"
	ComponentDrives          ComponentType = "drives"
	ComponentFCPorts         ComponentType = "fc-ports"
	ComponentIPPorts         ComponentType = "ip-ports"
	ComponentHostConnections ComponentType = "host-connections"
	ComponentIOGroups        ComponentType = "io-groups"
	ComponentManagedDisks    ComponentType = "managed-disks"
	ComponentVolumeMappings  ComponentType = "volume-mappings"
)

var componentTypes = []ComponentType{
	ComponentVolumes,
	ComponentPools,
	ComponentEnclosures,
	ComponentDrives,
	ComponentFCPorts,
	ComponentIPPorts,
	ComponentHostConnections,
	ComponentIOGroups,
	ComponentManagedDisks,
	ComponentVolumeMappings,
}

// ComponentTypes lists every accepted component type value.
func ComponentTypes() []string {
	values := make([]string, 0, len(componentTypes))
	for _, t := range componentTypes {
		values = append(values, string(t))
	}

	return values
}

// ParseComponentType matches the input against the closed component set.
// Matching is exact; anything else fails with UnsupportedComponentError
// rather than a best-effort guess.
func ParseComponentType(value string) (ComponentType, error) {
	for _, t := range componentTypes {
		if value == string(t) {
			return t, nil
		}
	}

	return "", &UnsupportedComponentError{Component: value}
}

// Severity filters alerts and notifications.
type Severity string

const (
	SeverityCritical             Severity = "critical"
	SeverityWarning              Severity = "warning"
	SeverityInfo                 Severity = "info"
	SeverityCriticalAcknowledged Severity = "critical_acknowledged"
	SeverityWarningAcknowledged  Severity = "warning_acknowledged"
	SeverityInfoAcknowledged     Severity = "info_acknowledged"
)

var severities = []Severity{
	SeverityCritical,
	SeverityWarning,
	SeverityInfo,
	SeverityCriticalAcknowledged,
	SeverityWarningAcknowledged,
	SeverityInfoAcknowledged,
}

// Severities lists every accepted severity value.
func Severities() []string {
	values := make([]string, 0, len(severities))
	for _, s := range severities {
		values = append(values, string(s))
	}

	return values
}

// ParseSeverity matches the input against the closed severity set.
func ParseSeverity(value string) (Severity, error) {
	for _, s := range severities {
		if value == string(s) {
			return s, nil
		}
	}

	return "", errors.Errorf("unsupported severity: %s", value)
}
