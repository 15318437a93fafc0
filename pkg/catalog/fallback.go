package catalog

// Static option data served when no provider credentials are configured or a
// live lookup fails. Kept deliberately small and common.

var fallbackInstanceTypes = []InstanceType{
	{InstanceType: "t3.micro", VCPUs: 2, MemoryMiB: 1024, Family: "t3"},
	{InstanceType: "t3.small", VCPUs: 2, MemoryMiB: 2048, Family: "t3"},
	{InstanceType: "t3.medium", VCPUs: 2, MemoryMiB: 4096, Family: "t3"},
	{InstanceType: "t3.large", VCPUs: 2, MemoryMiB: 8192, Family: "t3"},
	{InstanceType: "t3.xlarge", VCPUs: 4, MemoryMiB: 16384, Family: "t3"},
	{InstanceType: "m5.large", VCPUs: 2, MemoryMiB: 8192, Family: "m5"},
	{InstanceType: "m5.xlarge", VCPUs: 4, MemoryMiB: 16384, Family: "m5"},
	{InstanceType: "m5.2xlarge", VCPUs: 8, MemoryMiB: 32768, Family: "m5"},
	{InstanceType: "c5.large", VCPUs: 2, MemoryMiB: 4096, Family: "c5"},
	{InstanceType: "c5.xlarge", VCPUs: 4, MemoryMiB: 8192, Family: "c5"},
	{InstanceType: "c5.2xlarge", VCPUs: 8, MemoryMiB: 16384, Family: "c5"},
	{InstanceType: "r5.large", VCPUs: 2, MemoryMiB: 16384, Family: "r5"},
	{InstanceType: "r5.xlarge", VCPUs: 4, MemoryMiB: 32768, Family: "r5"},
	{InstanceType: "t2.micro", VCPUs: 1, MemoryMiB: 1024, Family: "t2"},
	{InstanceType: "t2.small", VCPUs: 1, MemoryMiB: 2048, Family: "t2"},
	{InstanceType: "t2.medium", VCPUs: 2, MemoryMiB: 4096, Family: "t2"},
}

var fallbackAMIs = []AMI{
	{ID: "ami-ubuntu-24.04", Name: "Ubuntu 24.04 LTS", OS: "ubuntu", Description: "Ubuntu 24.04 LTS (Noble Numbat)"},
	{ID: "ami-ubuntu-22.04", Name: "Ubuntu 22.04 LTS", OS: "ubuntu", Description: "Ubuntu 22.04 LTS (Jammy Jellyfish)"},
	{ID: "ami-ubuntu-20.04", Name: "Ubuntu 20.04 LTS", OS: "ubuntu", Description: "Ubuntu 20.04 LTS (Focal Fossa)"},
	{ID: "ami-amazon-linux-2023", Name: "Amazon Linux 2023", OS: "amazon-linux", Description: "Amazon Linux 2023 AMI"},
	{ID: "ami-amazon-linux-2", Name: "Amazon Linux 2", OS: "amazon-linux", Description: "Amazon Linux 2 AMI"},
	{ID: "ami-windows-2022", Name: "Windows Server 2022", OS: "windows", Description: "Microsoft Windows Server 2022 Base"},
	{ID: "ami-windows-2019", Name: "Windows Server 2019", OS: "windows", Description: "Microsoft Windows Server 2019 Base"},
	{ID: "ami-debian-12", Name: "Debian 12", OS: "debian", Description: "Debian 12 (Bookworm)"},
	{ID: "ami-rhel-9", Name: "Red Hat Enterprise Linux 9", OS: "rhel", Description: "RHEL 9"},
}

var fallbackRDSEngines = []RDSEngine{
	{Engine: "mysql", Description: "MySQL Community Edition", Versions: []string{"8.0.35", "8.0.34", "8.0.33", "5.7.44", "5.7.43"}},
	{Engine: "postgres", Description: "PostgreSQL", Versions: []string{"16.1", "15.5", "15.4", "14.10", "14.9", "13.13"}},
	{Engine: "mariadb", Description: "MariaDB Community Edition", Versions: []string{"10.11.6", "10.6.16", "10.5.23", "10.4.32"}},
	{Engine: "aurora-mysql", Description: "Amazon Aurora MySQL", Versions: []string{"8.0.mysql_aurora.3.05.1", "8.0.mysql_aurora.3.04.1"}},
	{Engine: "aurora-postgresql", Description: "Amazon Aurora PostgreSQL", Versions: []string{"15.4", "14.9", "13.12"}},
	{Engine: "oracle-ee", Description: "Oracle Enterprise Edition", Versions: []string{"19.0.0.0.ru-2024-01.rur-2024-01.r1"}},
	{Engine: "sqlserver-ex", Description: "SQL Server Express Edition", Versions: []string{"16.00.4105.2.v1", "15.00.4365.2.v1"}},
}

var fallbackRDSInstanceClasses = []RDSInstanceClass{
	{InstanceClass: "db.t3.micro", VCPUs: 2, MemoryMiB: 1024},
	{InstanceClass: "db.t3.small", VCPUs: 2, MemoryMiB: 2048},
	{InstanceClass: "db.t3.medium", VCPUs: 2, MemoryMiB: 4096},
	{InstanceClass: "db.t3.large", VCPUs: 2, MemoryMiB: 8192},
	{InstanceClass: "db.m5.large", VCPUs: 2, MemoryMiB: 8192},
	{InstanceClass: "db.m5.xlarge", VCPUs: 4, MemoryMiB: 16384},
	{InstanceClass: "db.m5.2xlarge", VCPUs: 8, MemoryMiB: 32768},
	{InstanceClass: "db.r5.large", VCPUs: 2, MemoryMiB: 16384},
	{InstanceClass: "db.r5.xlarge", VCPUs: 4, MemoryMiB: 32768},
	{InstanceClass: "db.t4g.micro", VCPUs: 2, MemoryMiB: 1024},
	{InstanceClass: "db.t4g.small", VCPUs: 2, MemoryMiB: 2048},
	{InstanceClass: "db.t4g.medium", VCPUs: 2, MemoryMiB: 4096},
}

var fallbackEKSVersions = []EKSVersion{
	{Version: "1.31", Status: "STANDARD_SUPPORT"},
	{Version: "1.30", Status: "STANDARD_SUPPORT"},
	{Version: "1.29", Status: "STANDARD_SUPPORT"},
	{Version: "1.28", Status: "EXTENDED_SUPPORT"},
	{Version: "1.27", Status: "EXTENDED_SUPPORT"},
}

var fallbackAvailabilityZones = map[string][]string{
	"us-east-1":      {"us-east-1a", "us-east-1b", "us-east-1c", "us-east-1d", "us-east-1e", "us-east-1f"},
	"us-east-2":      {"us-east-2a", "us-east-2b", "us-east-2c"},
	"us-west-1":      {"us-west-1a", "us-west-1b"},
	"us-west-2":      {"us-west-2a", "us-west-2b", "us-west-2c", "us-west-2d"},
	"eu-west-1":      {"eu-west-1a", "eu-west-1b", "eu-west-1c"},
	"eu-west-2":      {"eu-west-2a", "eu-west-2b", "eu-west-2c"},
	"eu-central-1":   {"eu-central-1a", "eu-central-1b", "eu-central-1c"},
	"ap-southeast-1": {"ap-southeast-1a", "ap-southeast-1b", "ap-southeast-1c"},
	"ap-southeast-2": {"ap-southeast-2a", "ap-southeast-2b", "ap-southeast-2c"},
	"ap-northeast-1": {"ap-northeast-1a", "ap-northeast-1c", "ap-northeast-1d"},
	"ap-south-1":     {"ap-south-1a", "ap-south-1b", "ap-south-1c"},
	"sa-east-1":      {"sa-east-1a", "sa-east-1b", "sa-east-1c"},
}
