package inventory

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdatypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"

	"github.com/awsinv/awsinv/internal/awsapi"
	"github.com/awsinv/awsinv/normalize"
)

// listFunctions drains ListFunctions and projects each function into
// a row.
func listFunctions(ctx context.Context, clients awsapi.Clients, region string) ([]Row, error) {
	rows := []Row{}

	paginator := lambda.NewListFunctionsPaginator(clients.Lambda, &lambda.ListFunctionsInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list functions: %w", err)
		}
		for _, fn := range output.Functions {
			rows = append(rows, functionRow(fn))
		}
	}

	return rows, nil
}

func functionRow(fn lambdatypes.FunctionConfiguration) Row {
	return Row{
		aws.ToString(fn.FunctionName),
		normalize.OrMissing(string(fn.Runtime)),
		normalize.OrMissing(aws.ToString(fn.Version)),
		// Lambda reports LastModified as a string, not a time.
		normalize.TimestampString(aws.ToString(fn.LastModified)),
	}
}
