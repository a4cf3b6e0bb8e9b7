package inventory

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	rdstypes "github.com/aws/aws-sdk-go-v2/service/rds/types"

	"github.com/awsinv/awsinv/internal/awsapi"
	"github.com/awsinv/awsinv/normalize"
)

// listDatabases drains DescribeDBInstances and projects each DB
// instance into a row.
func listDatabases(ctx context.Context, clients awsapi.Clients, region string) ([]Row, error) {
	rows := []Row{}

	paginator := rds.NewDescribeDBInstancesPaginator(clients.RDS, &rds.DescribeDBInstancesInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("describe db instances: %w", err)
		}
		for _, instance := range output.DBInstances {
			rows = append(rows, databaseRow(instance))
		}
	}

	return rows, nil
}

func databaseRow(instance rdstypes.DBInstance) Row {
	// The endpoint is absent while an instance is still creating.
	endpoint := ""
	if instance.Endpoint != nil {
		endpoint = aws.ToString(instance.Endpoint.Address)
	}

	return Row{
		aws.ToString(instance.DBInstanceIdentifier),
		normalize.OrMissing(aws.ToString(instance.Engine)),
		normalize.OrMissing(aws.ToString(instance.DBInstanceClass)),
		normalize.OrMissing(aws.ToString(instance.DBInstanceStatus)),
		normalize.OrMissing(endpoint),
		normalize.Timestamp(instance.InstanceCreateTime),
	}
}
