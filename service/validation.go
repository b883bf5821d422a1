package service

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var versionPattern = regexp.MustCompile(`^\d\.\d$`)

// ValidateName rejects empty or blank service names.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewBadParameterError("name is required", nil)
	}
	return nil
}

// ValidateVersion accepts only single-digit major.minor versions such as "1.0".
func ValidateVersion(version string) error {
	if version == "" {
		return NewBadParameterError("version is required", nil)
	}
	if !versionPattern.MatchString(version) {
		return NewBadParameterError(fmt.Sprintf("version %q must match %s", version, versionPattern), nil)
	}
	return nil
}

// ValidateEndpoint accepts well-formed absolute URIs with a scheme and a host.
func ValidateEndpoint(endpoint string) error {
	if endpoint == "" {
		return NewBadParameterError("endpoint is required", nil)
	}
	if strings.ContainsAny(endpoint, " \t\r\n") {
		return NewBadParameterError("endpoint must be a well-formed absolute URI", nil)
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return NewBadParameterError("endpoint must be a well-formed absolute URI", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return NewBadParameterError("endpoint must be a well-formed absolute URI", nil)
	}
	return nil
}

// ValidateKey validates a lookup request.
func ValidateKey(name, version string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	return ValidateVersion(version)
}
