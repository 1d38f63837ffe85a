// Package deploy holds the static catalog of deployment platforms: the
// services each platform offers and the default picks for a standard web
// application. The Deployment stage embeds this data in its prompt so the
// model recommends real services instead of inventing them.
package deploy

import "archsmith/internal/types"

// PlatformServices lists what a platform offers, grouped by concern.
type PlatformServices struct {
	Name         string   `json:"name"`
	Compute      []string `json:"compute"`
	Database     []string `json:"database"`
	Storage      []string `json:"storage"`
	CDN          []string `json:"cdn"`
	LoadBalancer []string `json:"load_balancer"`
	Cache        []string `json:"cache"`
	Monitoring   []string `json:"monitoring"`
	CICD         []string `json:"ci_cd"`
	Secrets      []string `json:"secrets"`
	Networking   []string `json:"networking"`
}

// RecommendedServices is the default pick per concern for a web application.
type RecommendedServices struct {
	Compute    string `json:"compute"`
	Database   string `json:"database"`
	Storage    string `json:"storage"`
	CDN        string `json:"cdn"`
	Monitoring string `json:"monitoring"`
}

var catalog = map[types.Platform]PlatformServices{
	types.PlatformAWS: {
		Name: "Amazon Web Services (AWS)",
		Compute: []string{
			"EC2 (Elastic Compute Cloud)",
			"ECS (Elastic Container Service)",
			"EKS (Elastic Kubernetes Service)",
			"Lambda (Serverless Functions)",
			"Elastic Beanstalk",
			"App Runner",
		},
		Database: []string{
			"RDS (Relational Database Service) - PostgreSQL/MySQL",
			"Aurora (MySQL/PostgreSQL compatible)",
			"DynamoDB (NoSQL)",
			"DocumentDB (MongoDB compatible)",
		},
		Storage:      []string{"S3 (Simple Storage Service)"},
		CDN:          []string{"CloudFront"},
		LoadBalancer: []string{"Application Load Balancer (ALB)", "Network Load Balancer (NLB)"},
		Cache:        []string{"ElastiCache (Redis/Memcached)"},
		Monitoring:   []string{"CloudWatch", "X-Ray"},
		CICD:         []string{"CodePipeline", "CodeBuild", "CodeDeploy"},
		Secrets:      []string{"Secrets Manager", "Systems Manager Parameter Store"},
		Networking:   []string{"VPC", "Route 53"},
	},
	types.PlatformGCP: {
		Name: "Google Cloud Platform (GCP)",
		Compute: []string{
			"Compute Engine",
			"Cloud Run",
			"Google Kubernetes Engine (GKE)",
			"Cloud Functions",
			"App Engine",
		},
		Database: []string{
			"Cloud SQL (PostgreSQL/MySQL)",
			"Cloud Spanner",
			"Firestore (NoSQL)",
			"Bigtable",
		},
		Storage:      []string{"Cloud Storage"},
		CDN:          []string{"Cloud CDN"},
		LoadBalancer: []string{"Cloud Load Balancing"},
		Cache:        []string{"Memorystore (Redis/Memcached)"},
		Monitoring:   []string{"Cloud Monitoring (Stackdriver)", "Cloud Trace"},
		CICD:         []string{"Cloud Build", "Cloud Deploy"},
		Secrets:      []string{"Secret Manager"},
		Networking:   []string{"VPC", "Cloud DNS"},
	},
	types.PlatformAzure: {
		Name: "Microsoft Azure",
		Compute: []string{
			"Virtual Machines",
			"Container Instances",
			"Azure Kubernetes Service (AKS)",
			"Azure Functions",
			"App Service",
		},
		Database: []string{
			"Azure Database for PostgreSQL/MySQL",
			"Azure SQL Database",
			"Cosmos DB (NoSQL)",
		},
		Storage:      []string{"Azure Blob Storage"},
		CDN:          []string{"Azure CDN"},
		LoadBalancer: []string{"Azure Load Balancer", "Application Gateway"},
		Cache:        []string{"Azure Cache for Redis"},
		Monitoring:   []string{"Azure Monitor", "Application Insights"},
		CICD:         []string{"Azure DevOps", "GitHub Actions"},
		Secrets:      []string{"Azure Key Vault"},
		Networking:   []string{"Virtual Network", "Azure DNS"},
	},
	types.PlatformDigitalOcean: {
		Name: "DigitalOcean",
		Compute: []string{
			"Droplets (Virtual Machines)",
			"App Platform",
			"Kubernetes (DOKS)",
			"Functions",
		},
		Database: []string{
			"Managed PostgreSQL",
			"Managed MySQL",
			"Managed MongoDB",
			"Managed Redis",
		},
		Storage:      []string{"Spaces (Object Storage)"},
		CDN:          []string{"Spaces CDN"},
		LoadBalancer: []string{"Load Balancers"},
		Cache:        []string{"Managed Redis"},
		Monitoring:   []string{"Monitoring & Alerting"},
		CICD:         []string{"App Platform (built-in CI/CD)", "GitHub Actions"},
		Secrets:      []string{"App Platform Environment Variables"},
		Networking:   []string{"VPC", "Cloud Firewalls"},
	},
	types.PlatformHeroku: {
		Name:         "Heroku",
		Compute:      []string{"Dynos (Web/Worker processes)"},
		Database:     []string{"Heroku Postgres", "Heroku Redis"},
		Storage:      []string{"AWS S3 (via add-ons)"},
		CDN:          []string{"Heroku SSL/CDN"},
		LoadBalancer: []string{"Built-in Router"},
		Cache:        []string{"Heroku Redis"},
		Monitoring:   []string{"Heroku Metrics", "Logplex"},
		CICD:         []string{"Heroku Pipelines", "GitHub Integration"},
		Secrets:      []string{"Config Vars"},
		Networking:   []string{"Private Spaces", "SSL"},
	},
	types.PlatformVercel: {
		Name:         "Vercel",
		Compute:      []string{"Serverless Functions", "Edge Functions"},
		Database:     []string{"Vercel Postgres (Neon)", "Vercel KV (Redis)", "External databases"},
		Storage:      []string{"Vercel Blob"},
		CDN:          []string{"Global Edge Network"},
		LoadBalancer: []string{"Automatic (Built-in)"},
		Cache:        []string{"Edge Caching", "Vercel KV"},
		Monitoring:   []string{"Vercel Analytics", "Web Vitals"},
		CICD:         []string{"Git Integration (Automatic)"},
		Secrets:      []string{"Environment Variables"},
		Networking:   []string{"Custom Domains", "Edge Network"},
	},
	types.PlatformRender: {
		Name: "Render",
		Compute: []string{
			"Web Services",
			"Background Workers",
			"Cron Jobs",
			"Static Sites",
		},
		Database:     []string{"PostgreSQL", "Redis"},
		Storage:      []string{"Disk Storage"},
		CDN:          []string{"Global CDN"},
		LoadBalancer: []string{"Built-in"},
		Cache:        []string{"Redis"},
		Monitoring:   []string{"Metrics & Logging"},
		CICD:         []string{"Auto-deploy from Git"},
		Secrets:      []string{"Environment Variables", "Secret Files"},
		Networking:   []string{"Custom Domains", "TLS/SSL"},
	},
	types.PlatformRailway: {
		Name:         "Railway",
		Compute:      []string{"Services (Containers)", "Cron Jobs"},
		Database:     []string{"PostgreSQL", "MySQL", "MongoDB", "Redis"},
		Storage:      []string{"Volumes"},
		CDN:          []string{"Railway CDN"},
		LoadBalancer: []string{"Built-in"},
		Cache:        []string{"Redis"},
		Monitoring:   []string{"Metrics & Logging"},
		CICD:         []string{"GitHub Integration"},
		Secrets:      []string{"Environment Variables"},
		Networking:   []string{"Custom Domains", "Private Networking"},
	},
	types.PlatformFlyIO: {
		Name:         "Fly.io",
		Compute:      []string{"Fly Machines (Containers)", "Apps"},
		Database:     []string{"Fly Postgres", "External databases"},
		Storage:      []string{"Fly Volumes"},
		CDN:          []string{"Anycast Network"},
		LoadBalancer: []string{"Fly Proxy"},
		Cache:        []string{"External Redis"},
		Monitoring:   []string{"Metrics & Logging"},
		CICD:         []string{"flyctl CLI", "GitHub Actions"},
		Secrets:      []string{"Secrets"},
		Networking:   []string{"Private Networking", "WireGuard VPN"},
	},
}

var recommended = map[types.Platform]RecommendedServices{
	types.PlatformAWS: {
		Compute:    "ECS with Fargate",
		Database:   "RDS PostgreSQL",
		Storage:    "S3",
		CDN:        "CloudFront",
		Monitoring: "CloudWatch",
	},
	types.PlatformGCP: {
		Compute:    "Cloud Run",
		Database:   "Cloud SQL PostgreSQL",
		Storage:    "Cloud Storage",
		CDN:        "Cloud CDN",
		Monitoring: "Cloud Monitoring",
	},
	types.PlatformAzure: {
		Compute:    "App Service",
		Database:   "Azure Database for PostgreSQL",
		Storage:    "Azure Blob Storage",
		CDN:        "Azure CDN",
		Monitoring: "Azure Monitor",
	},
	types.PlatformDigitalOcean: {
		Compute:    "App Platform",
		Database:   "Managed PostgreSQL",
		Storage:    "Spaces",
		CDN:        "Spaces CDN",
		Monitoring: "Monitoring & Alerting",
	},
	types.PlatformHeroku: {
		Compute:    "Dynos",
		Database:   "Heroku Postgres",
		Storage:    "S3 (add-on)",
		CDN:        "Heroku SSL/CDN",
		Monitoring: "Heroku Metrics",
	},
	types.PlatformVercel: {
		Compute:    "Serverless Functions",
		Database:   "Vercel Postgres",
		Storage:    "Vercel Blob",
		CDN:        "Global Edge Network",
		Monitoring: "Vercel Analytics",
	},
	types.PlatformRender: {
		Compute:    "Web Services",
		Database:   "PostgreSQL",
		Storage:    "Disk Storage",
		CDN:        "Global CDN",
		Monitoring: "Metrics & Logging",
	},
	types.PlatformRailway: {
		Compute:    "Services",
		Database:   "PostgreSQL",
		Storage:    "Volumes",
		CDN:        "Railway CDN",
		Monitoring: "Metrics & Logging",
	},
	types.PlatformFlyIO: {
		Compute:    "Fly Machines",
		Database:   "Fly Postgres",
		Storage:    "Fly Volumes",
		CDN:        "Anycast Network",
		Monitoring: "Metrics & Logging",
	},
}

// Services looks up the catalog entry for a platform. The second return is
// false for platforms outside the catalog, such as PlatformOther.
func Services(p types.Platform) (PlatformServices, bool) {
	s, ok := catalog[p]
	return s, ok
}

// Recommended looks up the default web-app service picks for a platform.
func Recommended(p types.Platform) (RecommendedServices, bool) {
	r, ok := recommended[p]
	return r, ok
}

// DisplayName returns the human-readable platform name, falling back to the
// identifier itself for uncataloged platforms.
func DisplayName(p types.Platform) string {
	if s, ok := catalog[p]; ok {
		return s.Name
	}
	return string(p)
}

// Cataloged lists the platforms with a catalog entry, in the order they are
// offered to users.
func Cataloged() []types.Platform {
	out := make([]types.Platform, 0, len(catalog))
	for _, p := range types.Platforms() {
		if _, ok := catalog[p]; ok {
			out = append(out, p)
		}
	}
	return out
}
