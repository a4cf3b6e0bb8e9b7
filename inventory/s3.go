package inventory

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/awsinv/awsinv/internal/awsapi"
	"github.com/awsinv/awsinv/normalize"
)

// defaultBucketRegion is what an empty LocationConstraint means:
// S3 reports us-east-1 buckets with no location at all.
const defaultBucketRegion = "us-east-1"

// listBuckets filters the global bucket listing down to the requested
// region. ListBuckets is not region-scoped, so each bucket's location
// is resolved individually before it is kept.
func listBuckets(ctx context.Context, clients awsapi.Clients, region string) ([]Row, error) {
	output, err := clients.S3.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("list buckets: %w", err)
	}

	rows := []Row{}
	for _, bucket := range output.Buckets {
		location, err := clients.S3.GetBucketLocation(ctx, &s3.GetBucketLocationInput{
			Bucket: bucket.Name,
		})
		if err != nil {
			// Location lookups can be denied per bucket; skip the
			// bucket rather than fail the whole listing. Transport
			// faults are not per-bucket and do fail it.
			if apiFault(err) {
				continue
			}
			return nil, fmt.Errorf("get bucket location %s: %w", aws.ToString(bucket.Name), err)
		}

		bucketRegion := string(location.LocationConstraint)
		if bucketRegion == "" {
			bucketRegion = defaultBucketRegion
		}
		if bucketRegion != region {
			continue
		}

		rows = append(rows, Row{
			aws.ToString(bucket.Name),
			bucketRegion,
			normalize.Timestamp(bucket.CreationDate),
		})
	}

	return rows, nil
}
