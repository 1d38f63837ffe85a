package deploy

import (
	"testing"

	"archsmith/internal/tester"
	"archsmith/internal/types"
)

func TestCatalogCoversAllPlatformsExceptOther(t *testing.T) {
	for _, p := range types.Platforms() {
		_, ok := Services(p)
		if p == types.PlatformOther {
			tester.False(t, ok, "custom platform must not have a catalog entry")
			continue
		}
		tester.True(t, ok, string(p))
	}
}

func TestServicesHaveCoreConcerns(t *testing.T) {
	for _, p := range Cataloged() {
		s, ok := Services(p)
		tester.True(t, ok)
		tester.True(t, s.Name != "", string(p))
		tester.True(t, len(s.Compute) > 0, string(p))
		tester.True(t, len(s.Database) > 0, string(p))
		tester.True(t, len(s.Monitoring) > 0, string(p))
		tester.True(t, len(s.CICD) > 0, string(p))
	}
}

func TestRecommendedMatchesCatalog(t *testing.T) {
	r, ok := Recommended(types.PlatformAWS)
	tester.True(t, ok)
	tester.Eq(t, r.Compute, "ECS with Fargate")
	tester.Eq(t, r.Database, "RDS PostgreSQL")
	tester.Eq(t, r.CDN, "CloudFront")

	_, ok = Recommended(types.PlatformOther)
	tester.False(t, ok)
}

func TestDisplayName(t *testing.T) {
	tester.Eq(t, DisplayName(types.PlatformGCP), "Google Cloud Platform (GCP)")
	tester.Eq(t, DisplayName(types.PlatformOther), "other")
}
