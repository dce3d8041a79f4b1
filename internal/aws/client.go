/*
Copyright © 2025 Lbtree Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/apigateway"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
)

// Config holds configuration for creating an AWS client
type Config struct {
	Region  string
	Profile string

	// EndpointURL overrides the AWS endpoint, for local emulators such as
	// LocalStack. Empty means the SDK default resolution.
	EndpointURL string
}

// Client provides service clients that share one loaded AWS configuration
type Client struct {
	config aws.Config
}

// NewClient creates a new AWS client with the specified configuration
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	var opts []func(*config.LoadOptions) error

	// Set region if specified
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}

	// Set profile if specified
	if cfg.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(cfg.Profile))
	}

	if cfg.EndpointURL != "" {
		opts = append(opts, config.WithBaseEndpoint(cfg.EndpointURL))
	}

	// Load AWS configuration
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &Client{config: awsCfg}, nil
}

// Region returns the configured AWS region
func (c *Client) Region() string {
	return c.config.Region
}

// ELBV2 returns an Elastic Load Balancing v2 client
func (c *Client) ELBV2() *elasticloadbalancingv2.Client {
	return elasticloadbalancingv2.NewFromConfig(c.config)
}

// APIGateway returns an API Gateway client
func (c *Client) APIGateway() *apigateway.Client {
	return apigateway.NewFromConfig(c.config)
}

// ECS returns an ECS client
func (c *Client) ECS() *ecs.Client {
	return ecs.NewFromConfig(c.config)
}
