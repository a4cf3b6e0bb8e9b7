package inventory

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/awsinv/awsinv/internal/awsapi"
	"github.com/awsinv/awsinv/normalize"
)

// listInstances drains DescribeInstances and projects every instance
// of every reservation into a row.
func listInstances(ctx context.Context, clients awsapi.Clients, region string) ([]Row, error) {
	rows := []Row{}

	paginator := ec2.NewDescribeInstancesPaginator(clients.EC2, &ec2.DescribeInstancesInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("describe instances: %w", err)
		}
		for _, reservation := range output.Reservations {
			for _, instance := range reservation.Instances {
				rows = append(rows, instanceRow(instance))
			}
		}
	}

	return rows, nil
}

func instanceRow(instance ec2types.Instance) Row {
	state := ""
	if instance.State != nil {
		state = string(instance.State.Name)
	}
	az := ""
	if instance.Placement != nil {
		az = aws.ToString(instance.Placement.AvailabilityZone)
	}

	return Row{
		aws.ToString(instance.InstanceId),
		normalize.OrMissing(state),
		normalize.OrMissing(string(instance.InstanceType)),
		normalize.OrMissing(az),
		normalize.Timestamp(instance.LaunchTime),
		normalize.Lookup(instanceTags(instance.Tags), "Name", normalize.Missing),
	}
}

// instanceTags converts the SDK tag list into ordered pairs for name
// lookup. Instances carry no intrinsic name field.
func instanceTags(tags []ec2types.Tag) []normalize.KV {
	kvs := make([]normalize.KV, 0, len(tags))
	for _, tag := range tags {
		kvs = append(kvs, normalize.KV{Key: aws.ToString(tag.Key), Value: aws.ToString(tag.Value)})
	}
	return kvs
}
