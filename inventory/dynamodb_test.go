package inventory

import (
	"context"
	"net"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awsinv/awsinv/internal/awsapi"
	"github.com/awsinv/awsinv/normalize"
)

// fakeDynamoDB pages table names keyed by the start-table marker and
// describes tables from a fixed set.
type fakeDynamoDB struct {
	pages  map[string]*dynamodb.ListTablesOutput
	tables map[string]*dynamodbtypes.TableDescription
	denied map[string]bool
	faults map[string]error
}

func (f *fakeDynamoDB) ListTables(ctx context.Context, params *dynamodb.ListTablesInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error) {
	page, ok := f.pages[aws.ToString(params.ExclusiveStartTableName)]
	if !ok {
		return &dynamodb.ListTablesOutput{}, nil
	}
	return page, nil
}

func (f *fakeDynamoDB) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	name := aws.ToString(params.TableName)
	if err, ok := f.faults[name]; ok {
		return nil, err
	}
	if f.denied[name] {
		return nil, &smithy.GenericAPIError{Code: "AccessDeniedException", Message: "denied"}
	}
	return &dynamodb.DescribeTableOutput{Table: f.tables[name]}, nil
}

func tableDescription(name string, items int64, sizeBytes int64) *dynamodbtypes.TableDescription {
	return &dynamodbtypes.TableDescription{
		TableName:      aws.String(name),
		TableStatus:    dynamodbtypes.TableStatusActive,
		ItemCount:      aws.Int64(items),
		TableSizeBytes: aws.Int64(sizeBytes),
	}
}

func TestListTablesDrainsAllPages(t *testing.T) {
	client := &fakeDynamoDB{
		pages: map[string]*dynamodb.ListTablesOutput{
			"": {
				TableNames:             []string{"users", "sessions"},
				LastEvaluatedTableName: aws.String("sessions"),
			},
			"sessions": {TableNames: []string{"events"}},
		},
		tables: map[string]*dynamodbtypes.TableDescription{
			"users":    tableDescription("users", 1500000, 256*1024*1024),
			"sessions": tableDescription("sessions", 42, 512*1024),
			"events":   tableDescription("events", 0, 0),
		},
	}

	rows, err := listTables(context.Background(), awsapi.Clients{DynamoDB: client}, "us-east-1")
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, Row{"users", "ACTIVE", "1,500,000", "256.0 MiB"}, rows[0])
	assert.Equal(t, Row{"sessions", "ACTIVE", "42", "0.5 MiB"}, rows[1])
	assert.Equal(t, Row{"events", "ACTIVE", "0", "0.0 MiB"}, rows[2])
}

func TestListTablesDeniedDescribeKeepsRow(t *testing.T) {
	client := &fakeDynamoDB{
		pages: map[string]*dynamodb.ListTablesOutput{
			"": {TableNames: []string{"users", "secrets"}},
		},
		tables: map[string]*dynamodbtypes.TableDescription{
			"users": tableDescription("users", 1, 1024),
		},
		denied: map[string]bool{"secrets": true},
	}

	rows, err := listTables(context.Background(), awsapi.Clients{DynamoDB: client}, "us-east-1")
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, Row{"secrets", "(access denied)", normalize.Missing, normalize.Missing}, rows[1])
	assert.Len(t, rows[1], len(KindTable.Columns()))
}

func TestListTablesThrottledDescribeKeepsNeutralRow(t *testing.T) {
	// A throttled describe is not an access denial; the row keeps a
	// neutral placeholder instead of a wrong label.
	client := &fakeDynamoDB{
		pages: map[string]*dynamodb.ListTablesOutput{
			"": {TableNames: []string{"busy"}},
		},
		faults: map[string]error{
			"busy": &smithy.GenericAPIError{Code: "ThrottlingException", Message: "slow down"},
		},
	}

	rows, err := listTables(context.Background(), awsapi.Clients{DynamoDB: client}, "us-east-1")
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, Row{"busy", "(unavailable)", normalize.Missing, normalize.Missing}, rows[0])
}

func TestListTablesDescribeTransportFaultFails(t *testing.T) {
	client := &fakeDynamoDB{
		pages: map[string]*dynamodb.ListTablesOutput{
			"": {TableNames: []string{"users"}},
		},
		faults: map[string]error{
			"users": &net.DNSError{Err: "no such host", Name: "dynamodb.us-east-1.amazonaws.com"},
		},
	}

	rows, err := listTables(context.Background(), awsapi.Clients{DynamoDB: client}, "us-east-1")
	require.Error(t, err)
	assert.Nil(t, rows)

	var dnsErr *net.DNSError
	assert.ErrorAs(t, err, &dnsErr)
}
