package inventory

import (
	"sort"
	"strings"
)

// Kind identifies one listable AWS resource kind. The kind selects
// both the adapter and the output column schema.
type Kind string

const (
	KindInstance Kind = "ec2"
	KindBucket   Kind = "s3"
	KindTable    Kind = "dynamodb"
	KindDatabase Kind = "rds"
	KindFunction Kind = "lambda"
)

// ParseKind maps a CLI service name to a Kind.
func ParseKind(service string) (Kind, bool) {
	kind := Kind(strings.ToLower(strings.TrimSpace(service)))
	if _, ok := adapters[kind]; !ok {
		return "", false
	}
	return kind, true
}

// SupportedNames returns the supported service names, sorted, for
// error messages and help text.
func SupportedNames() string {
	names := make([]string, 0, len(adapters))
	for kind := range adapters {
		names = append(names, string(kind))
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// Columns returns the fixed column schema for the kind. Every Row of
// that kind carries exactly these columns, in this order.
func (k Kind) Columns() []string {
	switch k {
	case KindInstance:
		return []string{"INSTANCE ID", "STATE", "TYPE", "AZ", "LAUNCHED", "NAME"}
	case KindBucket:
		return []string{"BUCKET", "REGION", "CREATED"}
	case KindTable:
		return []string{"TABLE", "STATUS", "ITEMS", "SIZE"}
	case KindDatabase:
		return []string{"IDENTIFIER", "ENGINE", "CLASS", "STATUS", "ENDPOINT", "CREATED"}
	case KindFunction:
		return []string{"FUNCTION", "RUNTIME", "VERSION", "MODIFIED"}
	default:
		return nil
	}
}

// Title returns the human name used in table headings.
func (k Kind) Title() string {
	switch k {
	case KindInstance:
		return "EC2 instances"
	case KindBucket:
		return "S3 buckets"
	case KindTable:
		return "DynamoDB tables"
	case KindDatabase:
		return "RDS DB instances"
	case KindFunction:
		return "Lambda functions"
	default:
		return string(k)
	}
}
