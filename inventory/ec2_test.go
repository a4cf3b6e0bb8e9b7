package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awsinv/awsinv/internal/awsapi"
	"github.com/awsinv/awsinv/normalize"
)

// fakeEC2 serves DescribeInstances pages keyed by continuation token.
type fakeEC2 struct {
	pages map[string]*ec2.DescribeInstancesOutput
	calls int
	err   error
}

func (f *fakeEC2) DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	page, ok := f.pages[aws.ToString(params.NextToken)]
	if !ok {
		return &ec2.DescribeInstancesOutput{}, nil
	}
	return page, nil
}

func instancePage(next string, instances ...ec2types.Instance) *ec2.DescribeInstancesOutput {
	output := &ec2.DescribeInstancesOutput{
		Reservations: []ec2types.Reservation{{Instances: instances}},
	}
	if next != "" {
		output.NextToken = aws.String(next)
	}
	return output
}

func runningInstance(id, name string) ec2types.Instance {
	launch := time.Date(2023, 11, 14, 12, 0, 0, 0, time.UTC)
	instance := ec2types.Instance{
		InstanceId:   aws.String(id),
		InstanceType: ec2types.InstanceTypeT3Micro,
		State:        &ec2types.InstanceState{Name: ec2types.InstanceStateNameRunning},
		Placement:    &ec2types.Placement{AvailabilityZone: aws.String("us-east-1a")},
		LaunchTime:   &launch,
	}
	if name != "" {
		instance.Tags = []ec2types.Tag{
			{Key: aws.String("env"), Value: aws.String("test")},
			{Key: aws.String("Name"), Value: aws.String(name)},
		}
	}
	return instance
}

func TestListInstancesDrainsAllPages(t *testing.T) {
	client := &fakeEC2{pages: map[string]*ec2.DescribeInstancesOutput{
		"":   instancePage("T2", runningInstance("i-001", "a"), runningInstance("i-002", "b")),
		"T2": instancePage("T3", runningInstance("i-003", "c")),
		"T3": instancePage("", runningInstance("i-004", "d"), runningInstance("i-005", "e")),
	}}

	rows, err := listInstances(context.Background(), awsapi.Clients{EC2: client}, "us-east-1")
	require.NoError(t, err)

	require.Len(t, rows, 5)
	assert.Equal(t, 3, client.calls)

	seen := map[string]bool{}
	for _, row := range rows {
		assert.False(t, seen[row[0]], "instance %s listed twice", row[0])
		seen[row[0]] = true
	}
}

func TestInstanceRow(t *testing.T) {
	t.Run("full instance", func(t *testing.T) {
		row := instanceRow(runningInstance("i-123456", "web-server"))

		assert.Equal(t, Row{"i-123456", "running", "t3.micro", "us-east-1a", "2023-11-14 12:00:00", "web-server"}, row)
		assert.Len(t, row, len(KindInstance.Columns()))
	})

	t.Run("missing Name tag renders sentinel", func(t *testing.T) {
		row := instanceRow(runningInstance("i-789012", ""))
		assert.Equal(t, normalize.Missing, row[5])
	})

	t.Run("bare instance", func(t *testing.T) {
		row := instanceRow(ec2types.Instance{InstanceId: aws.String("i-bare")})

		require.Len(t, row, len(KindInstance.Columns()))
		assert.Equal(t, "i-bare", row[0])
		for _, col := range row[1:] {
			assert.Equal(t, normalize.Missing, col)
		}
	})
}
