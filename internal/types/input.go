package types

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DetailLevel selects how exhaustive the generated blueprint should be.
type DetailLevel string

const (
	DetailHighLevel       DetailLevel = "high_level"
	DetailDetailed        DetailLevel = "detailed"
	DetailProductionReady DetailLevel = "production_ready"
)

// Platform is the preferred deployment target for the Deployment stage.
type Platform string

const (
	PlatformAWS          Platform = "aws"
	PlatformGCP          Platform = "gcp"
	PlatformAzure        Platform = "azure"
	PlatformDigitalOcean Platform = "digital_ocean"
	PlatformHeroku       Platform = "heroku"
	PlatformVercel       Platform = "vercel"
	PlatformRender       Platform = "render"
	PlatformRailway      Platform = "railway"
	PlatformFlyIO        Platform = "fly_io"
	PlatformOther        Platform = "other"
)

// Platforms lists every accepted deployment platform in display order.
func Platforms() []Platform {
	return []Platform{
		PlatformAWS, PlatformGCP, PlatformAzure, PlatformDigitalOcean,
		PlatformHeroku, PlatformVercel, PlatformRender, PlatformRailway,
		PlatformFlyIO, PlatformOther,
	}
}

// ParsePlatform normalizes a platform hint. An empty hint defaults to AWS.
func ParsePlatform(s string) (Platform, error) {
	v := Platform(strings.ToLower(strings.TrimSpace(s)))
	if v == "" {
		return PlatformAWS, nil
	}
	for _, p := range Platforms() {
		if v == p {
			return p, nil
		}
	}
	return "", &ValidationError{Field: "deployment_platform", Reason: fmt.Sprintf("unknown platform %q, must be one of %v", s, Platforms())}
}

// MinIdeaLength is the minimum number of characters a business idea must have.
const MinIdeaLength = 10

// UserInput carries the request that starts one blueprint run.
type UserInput struct {
	BusinessIdea   string      `json:"business_idea"`
	DetailLevel    DetailLevel `json:"detail_level"`
	Platform       Platform    `json:"deployment_platform"`
	CustomPlatform string      `json:"custom_platform,omitempty"`
}

// Validate rejects inputs before any stage runs. It fills in the default
// detail level and platform for empty fields.
func (u *UserInput) Validate() error {
	if utf8.RuneCountInString(u.BusinessIdea) < MinIdeaLength {
		return &ValidationError{
			Field:  "business_idea",
			Reason: fmt.Sprintf("must be at least %d characters", MinIdeaLength),
		}
	}
	if u.DetailLevel == "" {
		u.DetailLevel = DetailDetailed
	}
	p, err := ParsePlatform(string(u.Platform))
	if err != nil {
		return err
	}
	u.Platform = p
	return nil
}

// PlatformName returns the platform to design for, honoring a custom
// platform name when "other" is selected.
func (u UserInput) PlatformName() string {
	if u.Platform == PlatformOther && strings.TrimSpace(u.CustomPlatform) != "" {
		return strings.TrimSpace(u.CustomPlatform)
	}
	return string(u.Platform)
}

// ValidationError reports caller input rejected before the pipeline starts.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
