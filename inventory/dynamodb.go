package inventory

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/awsinv/awsinv/internal/awsapi"
	"github.com/awsinv/awsinv/normalize"
)

// listTables drains ListTables, then describes each table for its
// status, item count and size.
func listTables(ctx context.Context, clients awsapi.Clients, region string) ([]Row, error) {
	names, err := tableNames(ctx, clients.DynamoDB)
	if err != nil {
		return nil, err
	}

	rows := []Row{}
	for _, name := range names {
		row, err := tableRow(ctx, clients.DynamoDB, name)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func tableNames(ctx context.Context, client awsapi.DynamoDBAPI) ([]string, error) {
	var names []string

	paginator := dynamodb.NewListTablesPaginator(client, &dynamodb.ListTablesInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list tables: %w", err)
		}
		names = append(names, output.TableNames...)
	}

	return names, nil
}

func tableRow(ctx context.Context, client awsapi.DynamoDBAPI, name string) (Row, error) {
	output, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(name),
	})
	if err != nil {
		// DescribeTable can be denied per table; keep the name
		// visible instead of failing the listing. Other API faults
		// get a neutral placeholder, transport faults fail the run.
		if categorize(err) == CategoryAccessDenied {
			return Row{name, "(access denied)", normalize.Missing, normalize.Missing}, nil
		}
		if apiFault(err) {
			return Row{name, "(unavailable)", normalize.Missing, normalize.Missing}, nil
		}
		return nil, fmt.Errorf("describe table %s: %w", name, err)
	}
	if output.Table == nil {
		return Row{name, "(unavailable)", normalize.Missing, normalize.Missing}, nil
	}

	table := output.Table
	return Row{
		name,
		normalize.OrMissing(string(table.TableStatus)),
		normalize.Count(aws.ToInt64(table.ItemCount)),
		normalize.MiB(aws.ToInt64(table.TableSizeBytes)),
	}, nil
}
