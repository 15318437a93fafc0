// Package catalog serves provider option data (instance types, images,
// engines, versions) for the diagram editor. Live lookups go through the AWS
// SDK and are cached; without credentials the static fallback tables are
// served instead, so the rest of the tool keeps working offline.
package catalog

import (
	"context"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	"github.com/aws/aws-sdk-go-v2/service/rds"
)

// Source reports where a catalog answer came from.
type Source string

const (
	SourceAWS      Source = "aws"
	SourceCache    Source = "cache"
	SourceFallback Source = "fallback"
)

const (
	defaultRegion = "us-east-1"

	// DefaultTTL is the cache lifetime for live lookups.
	DefaultTTL = time.Hour
)

// InstanceType describes one EC2 instance type option.
type InstanceType struct {
	InstanceType string `json:"instanceType" yaml:"instanceType"`
	VCPUs        int    `json:"vCpus" yaml:"vCpus"`
	MemoryMiB    int    `json:"memory" yaml:"memory"`
	Family       string `json:"family" yaml:"family"`
}

// AMI describes one machine image option.
type AMI struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	OS          string `json:"os" yaml:"os"`
	Description string `json:"description" yaml:"description"`
}

// RDSEngine describes one database engine with its recent versions.
type RDSEngine struct {
	Engine      string   `json:"engine" yaml:"engine"`
	Description string   `json:"description" yaml:"description"`
	Versions    []string `json:"versions" yaml:"versions"`
}

// RDSInstanceClass describes one database instance class option.
type RDSInstanceClass struct {
	InstanceClass string `json:"instanceClass" yaml:"instanceClass"`
	VCPUs         int    `json:"vCpus,omitempty" yaml:"vCpus,omitempty"`
	MemoryMiB     int    `json:"memory,omitempty" yaml:"memory,omitempty"`
}

// EKSVersion describes one Kubernetes control plane version.
type EKSVersion struct {
	Version string `json:"version" yaml:"version"`
	Status  string `json:"status" yaml:"status"`
}

// Service answers catalog queries for one region.
type Service struct {
	region  string
	cache   *ttlCache
	logger  *slog.Logger
	credsOK bool

	cfg       aws.Config
	ec2Client *ec2.Client
	rdsClient *rds.Client
	eksClient *eks.Client
}

// New builds a catalog service for the region. Credential problems are not
// errors: the service degrades to fallback data and logs why.
func New(ctx context.Context, region string, logger *slog.Logger) *Service {
	if region == "" {
		region = defaultRegion
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		region: region,
		cache:  newTTLCache(DefaultTTL),
		logger: logger,
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if id, secret := os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY"); id != "" && secret != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(id, secret, "")))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		logger.Warn("aws config unavailable, serving fallback catalog data", "error", err)
		return s
	}
	s.cfg = cfg

	if _, err := cfg.Credentials.Retrieve(ctx); err != nil {
		logger.Info("aws credentials not configured, serving fallback catalog data", "region", region)
		return s
	}
	s.credsOK = true
	return s
}

func (s *Service) ec2() *ec2.Client {
	if s.ec2Client == nil {
		s.ec2Client = ec2.NewFromConfig(s.cfg)
	}
	return s.ec2Client
}

func (s *Service) rds() *rds.Client {
	if s.rdsClient == nil {
		s.rdsClient = rds.NewFromConfig(s.cfg)
	}
	return s.rdsClient
}

func (s *Service) eks() *eks.Client {
	if s.eksClient == nil {
		s.eksClient = eks.NewFromConfig(s.cfg)
	}
	return s.eksClient
}

// InstanceTypes lists EC2 instance type options, optionally filtered by
// family prefix ("t3", "m5").
func (s *Service) InstanceTypes(ctx context.Context, families []string) ([]InstanceType, Source) {
	if !s.credsOK {
		return filterInstanceTypes(fallbackInstanceTypes, families), SourceFallback
	}

	sorted := append([]string(nil), families...)
	sort.Strings(sorted)
	cacheKey := "ec2_types_" + s.region + "_" + strings.Join(sorted, "-")
	if cached, ok := s.cache.get(cacheKey); ok {
		return cached.([]InstanceType), SourceCache
	}

	target := families
	if len(target) == 0 {
		target = []string{"t3", "t2", "m5", "m6i", "c5", "c6i", "r5", "r6i"}
	}

	var all []InstanceType
	for _, family := range target {
		paginator := ec2.NewDescribeInstanceTypesPaginator(s.ec2(), &ec2.DescribeInstanceTypesInput{
			Filters: []ec2types.Filter{{
				Name:   aws.String("instance-type"),
				Values: []string{family + ".*"},
			}},
			MaxResults: aws.Int32(100),
		})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				s.logger.Warn("instance type lookup failed", "family", family, "error", err)
				break
			}
			for _, it := range page.InstanceTypes {
				name := string(it.InstanceType)
				entry := InstanceType{
					InstanceType: name,
					Family:       strings.SplitN(name, ".", 2)[0],
				}
				if it.VCpuInfo != nil {
					entry.VCPUs = int(aws.ToInt32(it.VCpuInfo.DefaultVCpus))
				}
				if it.MemoryInfo != nil {
					entry.MemoryMiB = int(aws.ToInt64(it.MemoryInfo.SizeInMiB))
				}
				all = append(all, entry)
			}
		}
	}
	if len(all) == 0 {
		return filterInstanceTypes(fallbackInstanceTypes, families), SourceFallback
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Family != all[j].Family {
			return all[i].Family < all[j].Family
		}
		return all[i].MemoryMiB < all[j].MemoryMiB
	})
	all = dedupeInstanceTypes(all)

	s.cache.set(cacheKey, all)
	return all, SourceAWS
}

// AMIs lists common machine images, optionally filtered by OS.
func (s *Service) AMIs(ctx context.Context, osFilter string) ([]AMI, Source) {
	if !s.credsOK {
		return filterAMIs(fallbackAMIs, osFilter), SourceFallback
	}

	// The full image list is cached once per region; the OS filter is applied
	// on every read so warm and cold calls agree.
	cacheKey := "amis_" + s.region
	if cached, ok := s.cache.get(cacheKey); ok {
		return filterAMIs(cached.([]AMI), osFilter), SourceCache
	}

	var amis []AMI
	amis = append(amis, s.ubuntuAMIs(ctx)...)
	amis = append(amis, s.amazonLinuxAMIs(ctx)...)
	amis = append(amis, s.windowsAMIs(ctx)...)

	if len(amis) == 0 {
		return filterAMIs(fallbackAMIs, osFilter), SourceFallback
	}
	s.cache.set(cacheKey, amis)
	return filterAMIs(amis, osFilter), SourceAWS
}

// describeImages fetches available x86_64 images for the owners and name
// patterns, newest first.
func (s *Service) describeImages(ctx context.Context, owners, namePatterns []string) []ec2types.Image {
	out, err := s.ec2().DescribeImages(ctx, &ec2.DescribeImagesInput{
		Owners: owners,
		Filters: []ec2types.Filter{
			{Name: aws.String("name"), Values: namePatterns},
			{Name: aws.String("state"), Values: []string{"available"}},
			{Name: aws.String("architecture"), Values: []string{"x86_64"}},
		},
	})
	if err != nil {
		s.logger.Warn("image lookup failed", "owners", owners, "error", err)
		return nil
	}
	images := out.Images
	sort.Slice(images, func(i, j int) bool {
		return aws.ToString(images[i].CreationDate) > aws.ToString(images[j].CreationDate)
	})
	return images
}

func (s *Service) ubuntuAMIs(ctx context.Context) []AMI {
	// Canonical's owner account.
	images := s.describeImages(ctx, []string{"099720109477"},
		[]string{"ubuntu/images/hvm-ssd/ubuntu-*-amd64-server-*"})

	seen := map[string]bool{}
	var amis []AMI
	for _, img := range images {
		name := aws.ToString(img.Name)
		for _, ver := range []string{"24.04", "22.04", "20.04"} {
			if strings.Contains(name, ver) && !seen[ver] {
				seen[ver] = true
				amis = append(amis, AMI{
					ID:          aws.ToString(img.ImageId),
					Name:        "Ubuntu " + ver + " LTS",
					OS:          "ubuntu",
					Description: aws.ToString(img.Description),
				})
				break
			}
		}
		if len(seen) >= 3 {
			break
		}
	}
	return amis
}

func (s *Service) amazonLinuxAMIs(ctx context.Context) []AMI {
	images := s.describeImages(ctx, []string{"amazon"},
		[]string{"al2023-ami-2023*-x86_64", "amzn2-ami-hvm-2.*-x86_64-gp2"})

	seen := map[string]bool{}
	var amis []AMI
	for _, img := range images {
		name := aws.ToString(img.Name)
		switch {
		case strings.Contains(name, "al2023") && !seen["al2023"]:
			seen["al2023"] = true
			amis = append(amis, AMI{
				ID:          aws.ToString(img.ImageId),
				Name:        "Amazon Linux 2023",
				OS:          "amazon-linux",
				Description: aws.ToString(img.Description),
			})
		case strings.Contains(name, "amzn2") && !seen["amzn2"]:
			seen["amzn2"] = true
			amis = append(amis, AMI{
				ID:          aws.ToString(img.ImageId),
				Name:        "Amazon Linux 2",
				OS:          "amazon-linux",
				Description: aws.ToString(img.Description),
			})
		}
		if len(seen) >= 2 {
			break
		}
	}
	return amis
}

func (s *Service) windowsAMIs(ctx context.Context) []AMI {
	images := s.describeImages(ctx, []string{"amazon"},
		[]string{"Windows_Server-2022-English-Full-Base-*", "Windows_Server-2019-English-Full-Base-*"})

	seen := map[string]bool{}
	var amis []AMI
	for _, img := range images {
		name := aws.ToString(img.Name)
		switch {
		case strings.Contains(name, "2022") && !seen["2022"]:
			seen["2022"] = true
			amis = append(amis, AMI{
				ID:          aws.ToString(img.ImageId),
				Name:        "Windows Server 2022",
				OS:          "windows",
				Description: aws.ToString(img.Description),
			})
		case strings.Contains(name, "2019") && !seen["2019"]:
			seen["2019"] = true
			amis = append(amis, AMI{
				ID:          aws.ToString(img.ImageId),
				Name:        "Windows Server 2019",
				OS:          "windows",
				Description: aws.ToString(img.Description),
			})
		}
		if len(seen) >= 2 {
			break
		}
	}
	return amis
}

// AvailabilityZones lists the zones of the service's region.
func (s *Service) AvailabilityZones(ctx context.Context) ([]string, Source) {
	if !s.credsOK {
		return fallbackZones(s.region), SourceFallback
	}

	cacheKey := "azs_" + s.region
	if cached, ok := s.cache.get(cacheKey); ok {
		return cached.([]string), SourceCache
	}

	out, err := s.ec2().DescribeAvailabilityZones(ctx, &ec2.DescribeAvailabilityZonesInput{
		Filters: []ec2types.Filter{{
			Name:   aws.String("state"),
			Values: []string{"available"},
		}},
	})
	if err != nil {
		s.logger.Warn("availability zone lookup failed", "region", s.region, "error", err)
		return fallbackZones(s.region), SourceFallback
	}

	zones := make([]string, 0, len(out.AvailabilityZones))
	for _, az := range out.AvailabilityZones {
		zones = append(zones, aws.ToString(az.ZoneName))
	}
	sort.Strings(zones)

	s.cache.set(cacheKey, zones)
	return zones, SourceAWS
}

// RDSEngines lists common database engines with their latest versions.
func (s *Service) RDSEngines(ctx context.Context) ([]RDSEngine, Source) {
	if !s.credsOK {
		return fallbackRDSEngines, SourceFallback
	}

	cacheKey := "rds_engines_" + s.region
	if cached, ok := s.cache.get(cacheKey); ok {
		return cached.([]RDSEngine), SourceCache
	}

	var engines []RDSEngine
	for _, name := range []string{"mysql", "postgres", "mariadb", "aurora-mysql", "aurora-postgresql"} {
		engine := RDSEngine{Engine: name}
		seen := map[string]bool{}

		paginator := rds.NewDescribeDBEngineVersionsPaginator(s.rds(), &rds.DescribeDBEngineVersionsInput{
			Engine: aws.String(name),
		})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				s.logger.Warn("engine version lookup failed", "engine", name, "error", err)
				break
			}
			for _, v := range page.DBEngineVersions {
				if engine.Description == "" {
					engine.Description = aws.ToString(v.DBEngineDescription)
				}
				version := aws.ToString(v.EngineVersion)
				if version != "" && !seen[version] {
					seen[version] = true
					engine.Versions = append(engine.Versions, version)
				}
			}
		}
		if len(engine.Versions) == 0 {
			continue
		}
		sortVersionsDesc(engine.Versions)
		if len(engine.Versions) > 5 {
			engine.Versions = engine.Versions[:5]
		}
		engines = append(engines, engine)
	}

	if len(engines) == 0 {
		return fallbackRDSEngines, SourceFallback
	}
	s.cache.set(cacheKey, engines)
	return engines, SourceAWS
}

// RDSInstanceClasses lists the orderable instance classes for an engine.
func (s *Service) RDSInstanceClasses(ctx context.Context, engine, engineVersion string) ([]RDSInstanceClass, Source) {
	if !s.credsOK {
		return fallbackRDSInstanceClasses, SourceFallback
	}

	cacheKey := "rds_classes_" + s.region + "_" + engine + "_" + engineVersion
	if cached, ok := s.cache.get(cacheKey); ok {
		return cached.([]RDSInstanceClass), SourceCache
	}

	if engine == "" {
		engine = "mysql"
	}
	input := &rds.DescribeOrderableDBInstanceOptionsInput{Engine: aws.String(engine)}
	if engineVersion != "" {
		input.EngineVersion = aws.String(engineVersion)
	}

	seen := map[string]bool{}
	paginator := rds.NewDescribeOrderableDBInstanceOptionsPaginator(s.rds(), input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			s.logger.Warn("instance class lookup failed", "engine", engine, "error", err)
			return fallbackRDSInstanceClasses, SourceFallback
		}
		for _, option := range page.OrderableDBInstanceOptions {
			seen[aws.ToString(option.DBInstanceClass)] = true
		}
	}

	if len(seen) == 0 {
		return fallbackRDSInstanceClasses, SourceFallback
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	classes := make([]RDSInstanceClass, 0, len(names))
	for _, name := range names {
		classes = append(classes, RDSInstanceClass{InstanceClass: name})
	}

	s.cache.set(cacheKey, classes)
	return classes, SourceAWS
}

// EKSVersions lists supported Kubernetes control plane versions, derived from
// addon compatibility data.
func (s *Service) EKSVersions(ctx context.Context) ([]EKSVersion, Source) {
	if !s.credsOK {
		return fallbackEKSVersions, SourceFallback
	}

	cacheKey := "eks_versions_" + s.region
	if cached, ok := s.cache.get(cacheKey); ok {
		return cached.([]EKSVersion), SourceCache
	}

	out, err := s.eks().DescribeAddonVersions(ctx, &eks.DescribeAddonVersionsInput{})
	if err != nil {
		s.logger.Warn("eks version lookup failed", "region", s.region, "error", err)
		return fallbackEKSVersions, SourceFallback
	}

	seen := map[string]bool{}
	for _, addon := range out.Addons {
		for _, av := range addon.AddonVersions {
			for _, compat := range av.Compatibilities {
				if v := aws.ToString(compat.ClusterVersion); v != "" {
					seen[v] = true
				}
			}
		}
	}
	if len(seen) == 0 {
		return fallbackEKSVersions, SourceFallback
	}

	versions := make([]string, 0, len(seen))
	for v := range seen {
		versions = append(versions, v)
	}
	sortVersionsDesc(versions)
	if len(versions) > 6 {
		versions = versions[:6]
	}

	result := make([]EKSVersion, 0, len(versions))
	for _, v := range versions {
		status := "EXTENDED_SUPPORT"
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 1.29 {
			status = "STANDARD_SUPPORT"
		}
		result = append(result, EKSVersion{Version: v, Status: status})
	}

	s.cache.set(cacheKey, result)
	return result, SourceAWS
}

// CredentialsStatus reports whether live lookups are possible.
func (s *Service) CredentialsStatus() (configured bool, region string) {
	return s.credsOK, s.region
}

// ClearCache drops all cached lookup results.
func (s *Service) ClearCache() {
	s.cache.clear()
}

func filterInstanceTypes(types []InstanceType, families []string) []InstanceType {
	if len(families) == 0 {
		return types
	}
	want := map[string]bool{}
	for _, f := range families {
		want[f] = true
	}
	var out []InstanceType
	for _, it := range types {
		if want[it.Family] {
			out = append(out, it)
		}
	}
	return out
}

func filterAMIs(amis []AMI, osFilter string) []AMI {
	if osFilter == "" {
		return amis
	}
	var out []AMI
	for _, ami := range amis {
		if ami.OS == osFilter {
			out = append(out, ami)
		}
	}
	return out
}

func fallbackZones(region string) []string {
	if zones, ok := fallbackAvailabilityZones[region]; ok {
		return zones
	}
	return []string{region + "a", region + "b", region + "c"}
}

// sortVersionsDesc orders dotted version strings newest first, comparing
// components numerically so "8.0.35" outranks "8.0.9".
func sortVersionsDesc(versions []string) {
	sort.Slice(versions, func(i, j int) bool {
		return versionLess(versions[j], versions[i])
	})
}

func versionLess(a, b string) bool {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		an, aerr := strconv.Atoi(as[i])
		bn, berr := strconv.Atoi(bs[i])
		if aerr == nil && berr == nil {
			if an != bn {
				return an < bn
			}
			continue
		}
		if as[i] != bs[i] {
			return as[i] < bs[i]
		}
	}
	return len(as) < len(bs)
}

func dedupeInstanceTypes(types []InstanceType) []InstanceType {
	seen := map[string]bool{}
	out := types[:0]
	for _, it := range types {
		if !seen[it.InstanceType] {
			seen[it.InstanceType] = true
			out = append(out, it)
		}
	}
	return out
}
