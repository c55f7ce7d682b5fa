// Package dynamo writes catalog records into DynamoDB tables keyed by "id".
package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/you-humble/assembly-seeder/internal/credential"
	"github.com/you-humble/assembly-seeder/internal/model"
)

// API is the subset of the DynamoDB client the seeder uses.
type API interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

type ClientConfig struct {
	// Region and Endpoint override the credential file when set.
	Region   string
	Endpoint string
}

// NewClient builds a DynamoDB client with static keys from the credential.
func NewClient(ctx context.Context, cred *credential.Credential, cfg ClientConfig) (*dynamodb.Client, error) {
	const op = "dynamo.NewClient"

	region := firstNonEmpty(cfg.Region, cred.Region)
	if region == "" {
		return nil, errors.Join(model.ErrConfig, fmt.Errorf("%s: region is required", op))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cred.AccessKeyID, cred.SecretAccessKey, cred.SessionToken),
		),
	)
	if err != nil {
		return nil, errors.Join(model.ErrConnection, fmt.Errorf("%s: %w", op, err))
	}

	endpoint := firstNonEmpty(cfg.Endpoint, cred.Endpoint)
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

// Ping checks that every table exists and is reachable.
func Ping(ctx context.Context, api API, timeout time.Duration, tables ...string) error {
	const op = "dynamo.Ping"

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	for _, table := range tables {
		if _, err := api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)}); err != nil {
			return errors.Join(model.ErrConnection, fmt.Errorf("%s %s: %w", op, table, err))
		}
	}

	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
